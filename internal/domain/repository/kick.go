package repository

import (
	"context"

	"github.com/polkiloo/kicktracker/internal/domain/model"
)

// KickRepository describes persistence of kicks. Every method is scoped to ownerID.
type KickRepository interface {
	Create(ctx context.Context, kick model.Kick) (*model.Kick, error)
	// ListByOwner returns kicks newest first, optionally restricted to window.
	ListByOwner(ctx context.Context, ownerID string, window *model.TimeWindow) ([]model.Kick, error)
	// ListByOwnerAscending returns every kick of the owner oldest first.
	ListByOwnerAscending(ctx context.Context, ownerID string) ([]model.Kick, error)
	Delete(ctx context.Context, ownerID, id string) error
	ReplaceAll(ctx context.Context, ownerID string, kicks []model.Kick) error
}
