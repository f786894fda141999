package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/polkiloo/kicktracker/internal/pkg/clock"
)

const testUserID = "7f1c3c44-5d1e-4bb8-9a0a-6c7e8f2b1d90"

func TestNewHMACStrategy_DefaultTTL(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if strategy == nil {
		t.Fatal("expected strategy instance")
	}
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != DefaultTTL {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestNewHMACStrategy_CustomTTL(t *testing.T) {
	ttl := 2 * time.Hour
	strategy := NewHMACStrategy("secret", Options{TTL: ttl})
	if strategy.ttl != ttl {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestHMACStrategy_IssueAndParse(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken(testUserID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != testUserID {
		t.Fatalf("unexpected user id: %s", userID)
	}
}

func TestHMACStrategy_IssueRejectsUnsupportedID(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if _, err := strategy.IssueToken(""); err == nil {
		t.Fatal("expected error for empty id")
	}
	if _, err := strategy.IssueToken("a:b"); err == nil {
		t.Fatal("expected error for id containing separator")
	}
}

func TestHMACStrategy_ParseInvalidBase64(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if _, err := strategy.ParseToken("not-base64"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_ParseInvalidParts(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	token := base64.StdEncoding.EncodeToString([]byte("only:two"))
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_ParseInvalidSignature(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken(testUserID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		t.Fatalf("unexpected parts count: %d", len(parts))
	}
	parts[2] = "tampered"
	tamperedToken := base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, ":")))
	if _, err := strategy.ParseToken(tamperedToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_ParseForeignSecret(t *testing.T) {
	token, err := NewHMACStrategy("one", Options{}).IssueToken(testUserID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := NewHMACStrategy("two", Options{}).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_ParseInvalidExpiry(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	payload := testUserID + ":not-a-number"
	sig := strategy.sign(payload)
	token := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", payload, sig)))
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_ParseExpired(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour, Clock: clk})
	token, err := strategy.IssueToken(testUserID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	clk.Advance(59 * time.Minute)
	if _, err := strategy.ParseToken(token); err != nil {
		t.Fatalf("expected token to be valid before expiry, got %v", err)
	}
	clk.Advance(time.Minute)
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategy_Name(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if strategy.Name() != "hmac" {
		t.Fatalf("unexpected name: %s", strategy.Name())
	}
}
