package usecase

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/kicktracker/internal/domain/errors"
	"github.com/polkiloo/kicktracker/internal/domain/model"
	"github.com/polkiloo/kicktracker/internal/domain/repository"
	"github.com/polkiloo/kicktracker/internal/metrics"
	"github.com/polkiloo/kicktracker/internal/pkg/clock"
	"github.com/polkiloo/kicktracker/internal/pkg/idgen"
)

// KickSettings controls how kicks are bucketed into days and judged against the goal.
type KickSettings struct {
	Location    *time.Location
	DailyTarget int
}

// KickUseCase records, lists and aggregates kicks of a single owner per call.
type KickUseCase struct {
	kicks    repository.KickRepository
	ids      idgen.Generator
	clock    clock.Clock
	location *time.Location
	target   int
}

// NewKickUseCase constructs KickUseCase.
func NewKickUseCase(kicks repository.KickRepository, ids idgen.Generator, clk clock.Clock, settings KickSettings) *KickUseCase {
	loc := settings.Location
	if loc == nil {
		loc = time.Local
	}
	return &KickUseCase{kicks: kicks, ids: ids, clock: clk, location: loc, target: settings.DailyTarget}
}

// authorize runs before every store operation. Storage queries are additionally filtered by owner.
func (u *KickUseCase) authorize(ownerID string) error {
	if ownerID == "" {
		return domainErrors.ErrUnauthenticated
	}
	return nil
}

// Record stores a new kick. A nil timestamp means now.
func (u *KickUseCase) Record(ctx context.Context, ownerID string, timestamp *time.Time, note *string) (*model.Kick, error) {
	if err := u.authorize(ownerID); err != nil {
		return nil, err
	}
	note = optionalString(note)
	if err := ValidateNote(note); err != nil {
		return nil, err
	}

	now := u.clock.Now()
	ts := now
	if timestamp != nil && !timestamp.IsZero() {
		ts = *timestamp
	}

	kick, err := u.kicks.Create(ctx, model.Kick{
		ID:        u.ids.NewID(),
		UserID:    ownerID,
		Timestamp: ts,
		Note:      note,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	metrics.KicksRecordedTotal.Inc()
	return kick, nil
}

// List returns the owner's kicks newest first. A non-empty day (YYYY-MM-DD)
// restricts the result to that calendar date.
func (u *KickUseCase) List(ctx context.Context, ownerID, day string) ([]model.Kick, error) {
	if err := u.authorize(ownerID); err != nil {
		return nil, err
	}
	if day == "" {
		return u.kicks.ListByOwner(ctx, ownerID, nil)
	}
	start, err := ParseDay(day, u.location)
	if err != nil {
		return nil, err
	}
	window := model.DayWindow(start, u.location)
	return u.kicks.ListByOwner(ctx, ownerID, &window)
}

// Remove deletes the owner's kick. Foreign, missing and malformed IDs all yield ErrNotFound.
func (u *KickUseCase) Remove(ctx context.Context, ownerID, id string) error {
	if err := u.authorize(ownerID); err != nil {
		return err
	}
	if !idgen.Valid(id) {
		return domainErrors.ErrNotFound
	}
	if err := u.kicks.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	metrics.KicksRemovedTotal.Inc()
	return nil
}

// DailyTotals returns one entry per calendar date with at least one kick, oldest first.
func (u *KickUseCase) DailyTotals(ctx context.Context, ownerID string) ([]model.DailyTotal, error) {
	if err := u.authorize(ownerID); err != nil {
		return nil, err
	}
	kicks, err := u.kicks.ListByOwnerAscending(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return AggregateDaily(kicks, u.location), nil
}

// Summary reports the tally of one date (today when day is empty) against the daily target.
func (u *KickUseCase) Summary(ctx context.Context, ownerID, day string) (*model.DailySummary, error) {
	if err := u.authorize(ownerID); err != nil {
		return nil, err
	}
	ref := u.clock.Now()
	if day != "" {
		parsed, err := ParseDay(day, u.location)
		if err != nil {
			return nil, err
		}
		ref = parsed
	}
	window := model.DayWindow(ref, u.location)
	kicks, err := u.kicks.ListByOwner(ctx, ownerID, &window)
	if err != nil {
		return nil, err
	}
	return Summarize(window.From.Format(model.DayLayout), len(kicks), u.target), nil
}

// ReplaceHistory swaps the owner's whole history for the given kicks.
func (u *KickUseCase) ReplaceHistory(ctx context.Context, ownerID string, kicks []model.Kick) error {
	if err := u.authorize(ownerID); err != nil {
		return err
	}
	now := u.clock.Now()
	prepared := make([]model.Kick, 0, len(kicks))
	for _, k := range kicks {
		k.ID = u.ids.NewID()
		k.UserID = ownerID
		if k.CreatedAt.IsZero() {
			k.CreatedAt = now
		}
		prepared = append(prepared, k)
	}
	return u.kicks.ReplaceAll(ctx, ownerID, prepared)
}
