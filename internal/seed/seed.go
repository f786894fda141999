// Package seed fills a demo account with synthetic kick history.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	domainErrors "github.com/polkiloo/kicktracker/internal/domain/errors"
	"github.com/polkiloo/kicktracker/internal/domain/model"
	"github.com/polkiloo/kicktracker/internal/pkg/clock"
)

const (
	DefaultEmail    = "test@gmail.com"
	DefaultPassword = "test123"
	DefaultName     = "Test Mama"
	DefaultDays     = 270

	minKicksPerDay = 5
	maxKicksPerDay = 15
	firstHour      = 8
	// kicks land in [08:00, 22:00)
	hourSpan = 14
)

// Accounts is the part of the auth use case the seeder needs.
type Accounts interface {
	Register(ctx context.Context, email, password string, name *string) (*model.User, string, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// History replaces an owner's kicks in one go.
type History interface {
	ReplaceHistory(ctx context.Context, ownerID string, kicks []model.Kick) error
}

// Options describes the demo account and how much history to generate.
type Options struct {
	Email    string
	Password string
	Name     string
	Days     int
}

func (o Options) normalize() Options {
	if o.Email == "" {
		o.Email = DefaultEmail
	}
	if o.Password == "" {
		o.Password = DefaultPassword
	}
	if o.Days <= 0 {
		o.Days = DefaultDays
	}
	return o
}

// Result summarises a seeding run.
type Result struct {
	UserID      string
	Email       string
	UserCreated bool
	Days        int
	Kicks       int
}

// Seeder wipes and regenerates the demo account's history.
type Seeder struct {
	accounts Accounts
	history  History
	clock    clock.Clock
	location *time.Location
	rng      *rand.Rand
	logger   *slog.Logger
}

func NewSeeder(accounts Accounts, history History, clk clock.Clock, loc *time.Location, rng *rand.Rand, logger *slog.Logger) *Seeder {
	if loc == nil {
		loc = time.Local
	}
	return &Seeder{accounts: accounts, history: history, clock: clk, location: loc, rng: rng, logger: logger}
}

// Run makes sure the demo user exists and replaces its kicks with fresh history.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.normalize()

	user, created, err := s.ensureUser(ctx, opts)
	if err != nil {
		return nil, err
	}

	kicks := Generate(s.rng, s.clock.Now(), opts.Days, s.location)
	if err := s.history.ReplaceHistory(ctx, user.ID, kicks); err != nil {
		return nil, fmt.Errorf("replace history: %w", err)
	}

	s.logger.Info("seeded kick history",
		slog.String("email", user.Email),
		slog.Int("days", opts.Days),
		slog.Int("kicks", len(kicks)),
	)
	return &Result{UserID: user.ID, Email: user.Email, UserCreated: created, Days: opts.Days, Kicks: len(kicks)}, nil
}

func (s *Seeder) ensureUser(ctx context.Context, opts Options) (*model.User, bool, error) {
	user, err := s.accounts.FindByEmail(ctx, opts.Email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, false, fmt.Errorf("look up demo user: %w", err)
	}

	var name *string
	if opts.Name != "" {
		name = &opts.Name
	}
	user, _, err = s.accounts.Register(ctx, opts.Email, opts.Password, name)
	if err != nil {
		return nil, false, fmt.Errorf("create demo user: %w", err)
	}
	s.logger.Info("created demo user", slog.String("email", user.Email))
	return user, true, nil
}

// Generate builds days of history ending on the calendar day of end in loc,
// with 5 to 15 kicks per day at random times between 08:00 and 22:00.
func Generate(rng *rand.Rand, end time.Time, days int, loc *time.Location) []model.Kick {
	end = end.In(loc)
	kicks := make([]model.Kick, 0, days*(minKicksPerDay+maxKicksPerDay)/2)
	for i := 0; i < days; i++ {
		day := time.Date(end.Year(), end.Month(), end.Day()-i, 0, 0, 0, 0, loc)
		n := minKicksPerDay + rng.Intn(maxKicksPerDay-minKicksPerDay+1)
		for j := 0; j < n; j++ {
			ts := time.Date(day.Year(), day.Month(), day.Day(),
				firstHour+rng.Intn(hourSpan), rng.Intn(60), rng.Intn(60), 0, loc)
			kicks = append(kicks, model.Kick{Timestamp: ts})
		}
	}
	return kicks
}
