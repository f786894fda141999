package auth

import (
	"errors"
	"time"

	"github.com/polkiloo/kicktracker/internal/pkg/clock"
)

var ErrInvalidToken = errors.New("invalid auth token")

// DefaultTTL is the validity window of issued tokens.
const DefaultTTL = 7 * 24 * time.Hour

type Strategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL   time.Duration
	Clock clock.Clock
}

func (o Options) normalize() Options {
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Clock == nil {
		o.Clock = clock.NewRealClock()
	}
	return o
}
