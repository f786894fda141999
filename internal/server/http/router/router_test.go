package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/kicktracker/internal/app"
	"github.com/polkiloo/kicktracker/internal/pkg/clock"
	"github.com/polkiloo/kicktracker/internal/server/http/dto"
	"github.com/polkiloo/kicktracker/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/kicktracker/internal/test"
	"github.com/polkiloo/kicktracker/internal/usecase"
)

type client struct {
	t      *testing.T
	engine *gin.Engine
}

func (c client) do(method, path, token string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	c.engine.ServeHTTP(resp, req)
	return resp
}

func newTestEngine(t *testing.T) (client, *clock.MockClock) {
	t.Helper()
	kickRepo := testhelpers.NewKickRepositoryStub()
	userRepo := testhelpers.NewUserRepositoryStub()
	userRepo.Kicks = kickRepo
	ids := &testhelpers.SequentialIDs{}
	clk := clock.NewMockClock(time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC))

	authUC, err := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, ids, clk)
	if err != nil {
		t.Fatalf("new auth use case: %v", err)
	}
	kickUC := usecase.NewKickUseCase(kickRepo, ids, clk, usecase.KickSettings{Location: time.UTC, DailyTarget: 10})
	facade := app.NewTrackerFacade(authUC, kickUC, nil)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(facade, logger)
	gin.SetMode(gin.TestMode)
	return client{t: t, engine: engine}, clk
}

func register(t *testing.T, c client, email string) string {
	t.Helper()
	resp := c.do(http.MethodPost, "/api/auth/register", "", map[string]string{"email": email, "password": "test123"})
	if resp.Code != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d (%s)", email, resp.Code, resp.Body.String())
	}
	var auth dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &auth); err != nil {
		t.Fatalf("decode auth response: %v", err)
	}
	return auth.Token
}

func TestSetupRoutesKickFlow(t *testing.T) {
	c, _ := newTestEngine(t)
	token := register(t, c, "mama@example.com")

	for _, ts := range []string{
		"2024-03-01T09:00:00Z",
		"2024-03-01T12:00:00Z",
		"2024-03-01T21:00:00Z",
		"2024-03-02T08:00:00Z",
		"2024-03-02T10:00:00Z",
	} {
		resp := c.do(http.MethodPost, "/api/kicks", token, map[string]string{"timestamp": ts})
		if resp.Code != http.StatusOK {
			t.Fatalf("record kick: expected 200, got %d (%s)", resp.Code, resp.Body.String())
		}
	}

	resp := c.do(http.MethodGet, "/api/kicks/stats", token, nil)
	want := `[{"date":"2024-03-01","count":3},{"date":"2024-03-02","count":2}]`
	if resp.Code != http.StatusOK || strings.TrimSpace(resp.Body.String()) != want {
		t.Fatalf("unexpected stats %d %s", resp.Code, resp.Body.String())
	}

	resp = c.do(http.MethodGet, "/api/kicks?date=2024-03-01", token, nil)
	var day []dto.KickResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &day); err != nil {
		t.Fatalf("decode kicks: %v", err)
	}
	if len(day) != 3 || !day[0].Timestamp.After(day[2].Timestamp) {
		t.Fatalf("expected 3 kicks newest first, got %+v", day)
	}

	resp = c.do(http.MethodGet, "/api/kicks/summary", token, nil)
	var summary dto.SummaryResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Date != "2024-03-02" || summary.Count != 2 || summary.Remaining != 8 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	resp = c.do(http.MethodDelete, "/api/kicks/"+day[0].ID, token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("remove: expected 200, got %d", resp.Code)
	}
	resp = c.do(http.MethodDelete, "/api/kicks/"+day[0].ID, token, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("second remove: expected 404, got %d", resp.Code)
	}
	resp = c.do(http.MethodDelete, "/api/kicks/not-a-uuid", token, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("malformed id: expected 404, got %d", resp.Code)
	}
}

func TestSetupRoutesOwnerIsolation(t *testing.T) {
	c, _ := newTestEngine(t)
	tokenA := register(t, c, "a@example.com")
	tokenB := register(t, c, "b@example.com")

	resp := c.do(http.MethodPost, "/api/kicks", tokenA, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("record kick: expected 200, got %d", resp.Code)
	}
	var kick dto.KickResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &kick); err != nil {
		t.Fatalf("decode kick: %v", err)
	}

	resp = c.do(http.MethodGet, "/api/kicks", tokenB, nil)
	if strings.TrimSpace(resp.Body.String()) != "[]" {
		t.Fatalf("expected B to see nothing, got %s", resp.Body.String())
	}

	resp = c.do(http.MethodDelete, "/api/kicks/"+kick.ID, tokenB, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("foreign remove: expected 404, got %d", resp.Code)
	}

	resp = c.do(http.MethodGet, "/api/kicks", tokenA, nil)
	var list []dto.KickResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode kicks: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected A's kick to survive, got %d", len(list))
	}
}

func TestSetupRoutesAuthentication(t *testing.T) {
	c, _ := newTestEngine(t)

	for _, path := range []string{"/api/kicks", "/api/kicks/stats", "/api/kicks/summary", "/api/auth/me"} {
		if resp := c.do(http.MethodGet, path, "", nil); resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s without token: expected 401, got %d", path, resp.Code)
		}
		if resp := c.do(http.MethodGet, path, "garbage", nil); resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s with bad token: expected 401, got %d", path, resp.Code)
		}
	}

	register(t, c, "mama@example.com")
	resp := c.do(http.MethodPost, "/api/auth/register", "", map[string]string{"email": "MAMA@example.com", "password": "other"})
	if resp.Code != http.StatusBadRequest || !strings.Contains(resp.Body.String(), "User already exists") {
		t.Fatalf("duplicate register: unexpected %d %s", resp.Code, resp.Body.String())
	}

	wrong := c.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "mama@example.com", "password": "nope"})
	unknown := c.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ghost@example.com", "password": "nope"})
	if wrong.Code != http.StatusBadRequest || unknown.Code != http.StatusBadRequest || wrong.Body.String() != unknown.Body.String() {
		t.Fatalf("login failures must be identical: %d %s vs %d %s", wrong.Code, wrong.Body.String(), unknown.Code, unknown.Body.String())
	}

	resp = c.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "mama@example.com", "password": "test123"})
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.Code)
	}
	var auth dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &auth); err != nil {
		t.Fatalf("decode auth: %v", err)
	}

	resp = c.do(http.MethodGet, "/api/auth/me", auth.Token, nil)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "mama@example.com") {
		t.Fatalf("me: unexpected %d %s", resp.Code, resp.Body.String())
	}

	resp = c.do(http.MethodDelete, "/api/auth/me", auth.Token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("delete account: expected 200, got %d", resp.Code)
	}
	if resp := c.do(http.MethodGet, "/api/kicks", auth.Token, nil); resp.Code != http.StatusUnauthorized {
		t.Fatalf("token of deleted account: expected 401, got %d", resp.Code)
	}
}

func TestSetupRoutesHealthAndMetrics(t *testing.T) {
	c, _ := newTestEngine(t)

	if resp := c.do(http.MethodGet, "/healthz", "", nil); resp.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", resp.Code)
	}

	c.do(http.MethodGet, "/healthz", "", nil)
	resp := c.do(http.MethodGet, "/metrics", "", nil)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "kicktracker_http_requests_total") {
		t.Fatalf("metrics: unexpected %d", resp.Code)
	}
}

var _ handlers.TrackerFacade = (*app.TrackerFacade)(nil)
