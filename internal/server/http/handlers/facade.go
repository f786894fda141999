package handlers

import (
	"context"
	"time"

	"github.com/polkiloo/kicktracker/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string, name *string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ResolveOwner(ctx context.Context, token string) (string, error)
	Profile(ctx context.Context, ownerID string) (*model.User, error)
	DeleteAccount(ctx context.Context, ownerID string) error
}

// KickFacade encapsulates kick operations exposed via HTTP.
type KickFacade interface {
	RecordKick(ctx context.Context, ownerID string, timestamp *time.Time, note *string) (*model.Kick, error)
	Kicks(ctx context.Context, ownerID, day string) ([]model.Kick, error)
	RemoveKick(ctx context.Context, ownerID, id string) error
	DailyTotals(ctx context.Context, ownerID string) ([]model.DailyTotal, error)
	DailySummary(ctx context.Context, ownerID, day string) (*model.DailySummary, error)
}

// HealthFacade reports whether backing services are reachable.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// TrackerFacade aggregates the full set of operations used across handlers.
type TrackerFacade interface {
	AuthFacade
	KickFacade
	HealthFacade
}
