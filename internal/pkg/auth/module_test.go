package auth

import (
	"testing"
	"time"

	"github.com/polkiloo/kicktracker/internal/config"
	"github.com/polkiloo/kicktracker/internal/pkg/clock"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher(hasherParams{Config: &config.Config{BcryptCost: 12}})
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != 12 {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}
}

func TestNewTokenStrategy(t *testing.T) {
	clk := clock.NewMockClock(time.Unix(0, 0))

	strategy, err := newTokenStrategy(strategyParams{
		Config: &config.Config{JWTSecret: "top-secret", TokenStrategy: config.TokenStrategyJWT, TokenTTL: time.Hour},
		Clock:  clk,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	jwtStrategy, ok := strategy.(*JWTStrategy)
	if !ok {
		t.Fatalf("expected *JWTStrategy, got %T", strategy)
	}
	if string(jwtStrategy.secret) != "top-secret" || jwtStrategy.ttl != time.Hour {
		t.Fatalf("unexpected jwt strategy: %+v", jwtStrategy)
	}

	strategy, err = newTokenStrategy(strategyParams{
		Config: &config.Config{JWTSecret: "top-secret", TokenStrategy: config.TokenStrategyHMAC},
		Clock:  clk,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hmacStrategy, ok := strategy.(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if hmacStrategy.ttl != DefaultTTL {
		t.Fatalf("unexpected ttl: %s", hmacStrategy.ttl)
	}

	if _, err := newTokenStrategy(strategyParams{Config: &config.Config{TokenStrategy: "paseto"}, Clock: clk}); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
