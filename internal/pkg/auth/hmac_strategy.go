package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/polkiloo/kicktracker/internal/pkg/clock"
)

// HMACStrategy implements auth token creation/verification using HMAC signatures.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	opts = opts.normalize()
	return &HMACStrategy{secret: []byte(secret), ttl: opts.TTL, clock: opts.Clock}
}

// IssueToken generates signed auth token for the user.
func (s *HMACStrategy) IssueToken(userID string) (string, error) {
	if userID == "" || strings.Contains(userID, ":") {
		return "", fmt.Errorf("hmac token: unsupported user id %q", userID)
	}
	expires := s.clock.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%s:%d", userID, expires)
	sig := s.sign(payload)
	token := fmt.Sprintf("%s:%s", payload, sig)
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates token and returns encoded user ID.
func (s *HMACStrategy) ParseToken(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 || parts[0] == "" {
		return "", ErrInvalidToken
	}

	payload := strings.Join(parts[:2], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[2])) {
		return "", ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}

	if !s.clock.Now().Before(time.Unix(expires, 0)) {
		return "", ErrInvalidToken
	}

	return parts[0], nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
