package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/kicktracker/internal/domain/errors"
	"github.com/polkiloo/kicktracker/internal/domain/model"
	"github.com/polkiloo/kicktracker/internal/domain/repository"
	"github.com/polkiloo/kicktracker/internal/metrics"
	pkgAuth "github.com/polkiloo/kicktracker/internal/pkg/auth"
	"github.com/polkiloo/kicktracker/internal/pkg/clock"
	"github.com/polkiloo/kicktracker/internal/pkg/idgen"
)

const dummyPassword = "kicktracker-timing-equalizer"

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
	ids    idgen.Generator
	clock  clock.Clock

	// dummyHash is compared against when the email is unknown.
	dummyHash string
}

// NewAuthUseCase constructs AuthUseCase. It fails when the hasher cannot produce
// the dummy hash compared against for unknown emails.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, ids idgen.Generator, clk clock.Clock) (*AuthUseCase, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, ids: ids, clock: clk, dummyHash: dummyHash}, nil
}

// Register creates a new user and returns it with a fresh auth token.
func (u *AuthUseCase) Register(ctx context.Context, email, password string, name *string) (*model.User, string, error) {
	email = NormalizeEmail(email)
	name = optionalString(name)
	if err := ValidateRegistration(email, password, name); err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, model.User{
		ID:           u.ids.NewID(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    u.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}
	metrics.UsersRegisteredTotal.Inc()

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
// Unknown email and wrong password fail identically, including the bcrypt work.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			u.compareDummy(password)
			metrics.AuthFailuresTotal.WithLabelValues(metrics.ReasonInvalidCredentials).Inc()
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		metrics.AuthFailuresTotal.WithLabelValues(metrics.ReasonInvalidCredentials).Inc()
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ResolveOwner maps a bearer token to the ID of a live user.
func (u *AuthUseCase) ResolveOwner(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domainErrors.ErrUnauthenticated
	}
	userID, err := u.tokens.ParseToken(token)
	if err != nil || !idgen.Valid(userID) {
		metrics.AuthFailuresTotal.WithLabelValues(metrics.ReasonInvalidToken).Inc()
		return "", domainErrors.ErrUnauthenticated
	}
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			metrics.AuthFailuresTotal.WithLabelValues(metrics.ReasonUnknownUser).Inc()
			return "", domainErrors.ErrUnauthenticated
		}
		return "", err
	}
	return userID, nil
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// FindByEmail looks a user up by address, normalising it the same way Register does.
func (u *AuthUseCase) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return u.users.GetByEmail(ctx, NormalizeEmail(email))
}

// DeleteAccount removes the user; their kicks go with them.
func (u *AuthUseCase) DeleteAccount(ctx context.Context, id string) error {
	if id == "" {
		return domainErrors.ErrUnauthenticated
	}
	return u.users.Delete(ctx, id)
}

func (u *AuthUseCase) compareDummy(password string) {
	_ = u.hasher.Compare(u.dummyHash, password)
}
