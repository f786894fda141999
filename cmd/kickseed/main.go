// Command kickseed fills a demo account with months of synthetic kick history.
// Database and timezone settings come from the same environment as the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/kicktracker/internal/config"
	"github.com/polkiloo/kicktracker/internal/di"
	"github.com/polkiloo/kicktracker/internal/pkg/clock"
	"github.com/polkiloo/kicktracker/internal/seed"
	"github.com/polkiloo/kicktracker/internal/usecase"
)

func main() {
	opts := seed.Options{}
	var rngSeed int64
	flag.StringVar(&opts.Email, "email", seed.DefaultEmail, "Demo account email")
	flag.StringVar(&opts.Password, "password", seed.DefaultPassword, "Demo account password, used only when the account is created")
	flag.StringVar(&opts.Name, "name", seed.DefaultName, "Demo account display name")
	flag.IntVar(&opts.Days, "days", seed.DefaultDays, "Days of history to generate, ending today")
	flag.Int64Var(&rngSeed, "seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, rngSeed); err != nil {
		fmt.Fprintf(os.Stderr, "kickseed: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts seed.Options, rngSeed int64) error {
	cfg, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var (
		auth   *usecase.AuthUseCase
		kicks  *usecase.KickUseCase
		clk    clock.Clock
		logger *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return ctx }),
		di.Core(fx.Replace(cfg)),
		fx.Populate(&auth, &kicks, &clk, &logger),
	)
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer func() { _ = app.Stop(context.Background()) }()

	seeder := seed.NewSeeder(auth, kicks, clk, cfg.Location, rand.New(rand.NewSource(rngSeed)), logger)
	res, err := seeder.Run(ctx, opts)
	if err != nil {
		return err
	}

	if res.UserCreated {
		fmt.Printf("created %s\n", res.Email)
	}
	fmt.Printf("added %d kicks over %d days for %s\n", res.Kicks, res.Days, res.Email)
	return nil
}
