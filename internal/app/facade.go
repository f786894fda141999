package app

import (
	"context"
	"time"

	"github.com/polkiloo/kicktracker/internal/domain/model"
	"github.com/polkiloo/kicktracker/internal/usecase"
)

// HealthChecker reports whether storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// TrackerFacade is the single entry point the HTTP layer talks to.
type TrackerFacade struct {
	auth   *usecase.AuthUseCase
	kicks  *usecase.KickUseCase
	health HealthChecker
}

func NewTrackerFacade(auth *usecase.AuthUseCase, kicks *usecase.KickUseCase, health HealthChecker) *TrackerFacade {
	return &TrackerFacade{auth: auth, kicks: kicks, health: health}
}

func (f *TrackerFacade) Register(ctx context.Context, email, password string, name *string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password, name)
}

func (f *TrackerFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *TrackerFacade) ResolveOwner(ctx context.Context, token string) (string, error) {
	return f.auth.ResolveOwner(ctx, token)
}

func (f *TrackerFacade) Profile(ctx context.Context, ownerID string) (*model.User, error) {
	return f.auth.GetByID(ctx, ownerID)
}

func (f *TrackerFacade) DeleteAccount(ctx context.Context, ownerID string) error {
	return f.auth.DeleteAccount(ctx, ownerID)
}

func (f *TrackerFacade) RecordKick(ctx context.Context, ownerID string, timestamp *time.Time, note *string) (*model.Kick, error) {
	return f.kicks.Record(ctx, ownerID, timestamp, note)
}

func (f *TrackerFacade) Kicks(ctx context.Context, ownerID, day string) ([]model.Kick, error) {
	return f.kicks.List(ctx, ownerID, day)
}

func (f *TrackerFacade) RemoveKick(ctx context.Context, ownerID, id string) error {
	return f.kicks.Remove(ctx, ownerID, id)
}

func (f *TrackerFacade) DailyTotals(ctx context.Context, ownerID string) ([]model.DailyTotal, error) {
	return f.kicks.DailyTotals(ctx, ownerID)
}

func (f *TrackerFacade) DailySummary(ctx context.Context, ownerID, day string) (*model.DailySummary, error) {
	return f.kicks.Summary(ctx, ownerID, day)
}

func (f *TrackerFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
