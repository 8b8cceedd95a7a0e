package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/cleanearth/internal/config"
	"github.com/greenloop/cleanearth/internal/domain/model"
	testhelpers "github.com/greenloop/cleanearth/internal/test"
)

type pingerStub struct {
	err error
}

func (s pingerStub) HealthCheck(context.Context) error { return s.err }

type photoResolverStub struct{}

func (photoResolverStub) Path(model.PhotoRole, string) (string, error) {
	return "", context.Canceled
}

func newTestEngine(facade testhelpers.TrackerFacadeStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{MaxUploadBytes: 16 << 20}
	return Setup(facade, photoResolverStub{}, pingerStub{}, cfg, logger)
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newTestEngine(testhelpers.TrackerFacadeStub{})

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusFound || resp.Header().Get("Location") != "/login" {
		t.Fatalf("root: expected login redirect, got %d %q", resp.Code, resp.Header().Get("Location"))
	}

	form := url.Values{
		"name":             {"Greta"},
		"email":            {"greta@example.com"},
		"password":         {"secret1"},
		"confirm_password": {"secret1"},
	}
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestSetupLoginFlow(t *testing.T) {
	engine := newTestEngine(testhelpers.TrackerFacadeStub{})

	form := url.Values{"email": {"greta@example.com"}, "password": {"secret1"}}
	req := httptest.NewRequest(http.MethodPost, "/login?next=%2Fprofile", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusFound {
		t.Fatalf("login: expected redirect, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/profile" {
		t.Fatalf("login: expected next redirect, got %q", loc)
	}
}

func TestSetupSessionRoutesRequireAuth(t *testing.T) {
	engine := newTestEngine(testhelpers.TrackerFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{ParseFn: func(string) (int64, error) {
			return 0, context.Canceled
		}},
	})

	for _, path := range []string{"/dashboard", "/profile", "/leaderboard", "/charts", "/upload", "/logout"} {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusFound {
			t.Fatalf("%s: expected login redirect without session, got %d", path, resp.Code)
		}
		if loc := resp.Header().Get("Location"); !strings.HasPrefix(loc, "/login?next=") {
			t.Fatalf("%s: unexpected redirect %q", path, loc)
		}
	}
}

func TestSetupDashboardWithSession(t *testing.T) {
	engine := newTestEngine(testhelpers.TrackerFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Accept-Encoding", "identity")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if payload.User.Name == "" || payload.Message == "" {
		t.Fatalf("unexpected dashboard payload %s", resp.Body.String())
	}
}
