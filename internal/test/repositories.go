package test

import (
	"context"
	"sort"
	"sync"

	domainErrors "github.com/polkiloo/kicktracker/internal/domain/errors"
	"github.com/polkiloo/kicktracker/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[string]*model.User
	Err   error

	// Kicks, when set, loses the deleted user's kicks like the foreign key cascade does.
	Kicks *KickRepositoryStub
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[string]*model.User),
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.User)
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := user
	s.Users[user.Email] = &stored
	s.ByID[user.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the user and, if linked, their kicks.
func (s *UserRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	delete(s.Users, user.Email)
	if s.Kicks != nil {
		s.Kicks.dropOwner(id)
	}
	return nil
}

// KickRepositoryStub is an in-memory KickRepository honouring owner scoping and ordering.
type KickRepositoryStub struct {
	mu    sync.Mutex
	items []model.Kick
	Err   error
}

// NewKickRepositoryStub constructs an empty kick store.
func NewKickRepositoryStub() *KickRepositoryStub {
	return &KickRepositoryStub{}
}

// Create appends kick to the store.
func (s *KickRepositoryStub) Create(ctx context.Context, kick model.Kick) (*model.Kick, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, kick)
	stored := kick
	return &stored, nil
}

// ListByOwner returns owner's kicks newest first, optionally inside window.
func (s *KickRepositoryStub) ListByOwner(ctx context.Context, ownerID string, window *model.TimeWindow) ([]model.Kick, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := s.filter(ownerID, window)
	sort.SliceStable(result, func(i, j int) bool { return result[i].Timestamp.After(result[j].Timestamp) })
	return result, nil
}

// ListByOwnerAscending returns owner's kicks oldest first.
func (s *KickRepositoryStub) ListByOwnerAscending(ctx context.Context, ownerID string) ([]model.Kick, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := s.filter(ownerID, nil)
	sort.SliceStable(result, func(i, j int) bool { return result[i].Timestamp.Before(result[j].Timestamp) })
	return result, nil
}

// Delete removes the kick only when it belongs to ownerID.
func (s *KickRepositoryStub) Delete(ctx context.Context, ownerID, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, k := range s.items {
		if k.ID == id && k.UserID == ownerID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ReplaceAll drops the owner's kicks and stores the provided ones.
func (s *KickRepositoryStub) ReplaceAll(ctx context.Context, ownerID string, kicks []model.Kick) error {
	if s.Err != nil {
		return s.Err
	}
	s.dropOwner(ownerID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, kicks...)
	return nil
}

// Len returns the number of stored kicks across all owners.
func (s *KickRepositoryStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *KickRepositoryStub) filter(ownerID string, window *model.TimeWindow) []model.Kick {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Kick
	for _, k := range s.items {
		if k.UserID != ownerID {
			continue
		}
		if window != nil && !window.Contains(k.Timestamp) {
			continue
		}
		result = append(result, k)
	}
	return result
}

func (s *KickRepositoryStub) dropOwner(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, k := range s.items {
		if k.UserID != ownerID {
			kept = append(kept, k)
		}
	}
	s.items = kept
}
