package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/polkiloo/kicktracker/internal/pkg/clock"
)

// JWTStrategy issues HS256 JSON Web Tokens whose subject is the user ID.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	opts = opts.normalize()
	return &JWTStrategy{secret: []byte(secret), ttl: opts.TTL, clock: opts.Clock}
}

func (s *JWTStrategy) IssueToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("jwt token: empty user id")
	}
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken verifies signature and expiry. Every failure maps to ErrInvalidToken.
func (s *JWTStrategy) ParseToken(token string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
