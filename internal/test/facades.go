package test

import (
	"context"
	"time"

	"github.com/polkiloo/kicktracker/internal/domain/model"
)

// KickFacadeStub provides controllable behaviour for kick endpoints.
type KickFacadeStub struct {
	RecordFn  func(context.Context, string, *time.Time, *string) (*model.Kick, error)
	KicksFn   func(context.Context, string, string) ([]model.Kick, error)
	RemoveFn  func(context.Context, string, string) error
	TotalsFn  func(context.Context, string) ([]model.DailyTotal, error)
	SummaryFn func(context.Context, string, string) (*model.DailySummary, error)
}

// RecordKick delegates to provided function or echoes the input.
func (s KickFacadeStub) RecordKick(ctx context.Context, ownerID string, timestamp *time.Time, note *string) (*model.Kick, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, ownerID, timestamp, note)
	}
	ts := time.Unix(0, 0).UTC()
	if timestamp != nil {
		ts = *timestamp
	}
	return &model.Kick{ID: "kick-1", UserID: ownerID, Timestamp: ts, Note: note, CreatedAt: ts}, nil
}

// Kicks returns predefined kicks for given owner.
func (s KickFacadeStub) Kicks(ctx context.Context, ownerID, day string) ([]model.Kick, error) {
	if s.KicksFn != nil {
		return s.KicksFn(ctx, ownerID, day)
	}
	return []model.Kick{{ID: "kick-1", UserID: ownerID, Timestamp: time.Unix(0, 0).UTC()}}, nil
}

// RemoveKick executes configured removal handler.
func (s KickFacadeStub) RemoveKick(ctx context.Context, ownerID, id string) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, ownerID, id)
	}
	return nil
}

// DailyTotals returns preconfigured aggregates.
func (s KickFacadeStub) DailyTotals(ctx context.Context, ownerID string) ([]model.DailyTotal, error) {
	if s.TotalsFn != nil {
		return s.TotalsFn(ctx, ownerID)
	}
	return []model.DailyTotal{{Date: "2024-03-01", Count: 3}}, nil
}

// DailySummary returns preconfigured summary.
func (s KickFacadeStub) DailySummary(ctx context.Context, ownerID, day string) (*model.DailySummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, ownerID, day)
	}
	return &model.DailySummary{Date: "2024-03-01", Count: 3, Target: 10, Remaining: 7}, nil
}
