package test

import (
	"context"
	"errors"
	"fmt"

	"github.com/polkiloo/kicktracker/internal/domain/model"
	pkgAuth "github.com/polkiloo/kicktracker/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns "token-<id>" unless overridden.
func (s StrategyStub) IssueToken(userID string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token-" + userID, nil
}

// ParseToken reverses IssueToken unless overridden.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	var id string
	if _, err := fmt.Sscanf(token, "token-%s", &id); err != nil || id == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return id, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// OwnerResolverStub implements the middleware token resolution contract.
type OwnerResolverStub struct {
	ID        string
	Err       error
	ResolveFn func(context.Context, string) (string, error)
}

// ResolveOwner either delegates to override or returns predefined result.
func (s OwnerResolverStub) ResolveOwner(ctx context.Context, token string) (string, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.ID, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn      func(context.Context, string, string, *string) (*model.User, string, error)
	AuthenticateFn  func(context.Context, string, string) (*model.User, string, error)
	ResolveFn       func(context.Context, string) (string, error)
	ProfileFn       func(context.Context, string) (*model.User, error)
	DeleteAccountFn func(context.Context, string) error
}

// Register returns a user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string, name *string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, name)
	}
	return &model.User{ID: "user-1", Email: email, Name: name}, "token", nil
}

// Authenticate returns a user and token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: "user-1", Email: email}, "token", nil
}

// ResolveOwner returns stored identifier for authenticated user.
func (s AuthFacadeStub) ResolveOwner(ctx context.Context, token string) (string, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	return "user-1", nil
}

// Profile returns the account of the owner.
func (s AuthFacadeStub) Profile(ctx context.Context, ownerID string) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, ownerID)
	}
	return &model.User{ID: ownerID, Email: "mama@example.com"}, nil
}

// DeleteAccount removes the owner's account.
func (s AuthFacadeStub) DeleteAccount(ctx context.Context, ownerID string) error {
	if s.DeleteAccountFn != nil {
		return s.DeleteAccountFn(ctx, ownerID)
	}
	return nil
}

// TrackerFacadeStub aggregates facade dependencies for HTTP layer tests.
type TrackerFacadeStub struct {
	AuthFacadeStub
	KickFacadeStub
	HealthFn func(context.Context) error
}

// HealthCheck reports configured storage health.
func (s TrackerFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
