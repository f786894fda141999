package auth

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/polkiloo/kicktracker/internal/config"
	"github.com/polkiloo/kicktracker/internal/pkg/clock"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

type hasherParams struct {
	fx.In

	Config *config.Config
}

func newPasswordHasher(p hasherParams) PasswordHasher {
	return NewBcryptHasher(p.Config.BcryptCost)
}

type strategyParams struct {
	fx.In

	Config *config.Config
	Clock  clock.Clock
}

func newTokenStrategy(p strategyParams) (Strategy, error) {
	opts := Options{TTL: p.Config.TokenTTL, Clock: p.Clock}
	switch p.Config.TokenStrategy {
	case config.TokenStrategyJWT, "":
		return NewJWTStrategy(p.Config.JWTSecret, opts), nil
	case config.TokenStrategyHMAC:
		return NewHMACStrategy(p.Config.JWTSecret, opts), nil
	default:
		return nil, fmt.Errorf("unknown token strategy %q", p.Config.TokenStrategy)
	}
}
