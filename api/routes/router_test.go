package routes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/salonadmin/api/controllers"
	"github.com/angelmondragon/salonadmin/internal/directory"
	"github.com/angelmondragon/salonadmin/internal/places"
	pkgAuth "github.com/angelmondragon/salonadmin/pkg/auth"
	"github.com/angelmondragon/salonadmin/pkg/config"
	"github.com/angelmondragon/salonadmin/pkg/enums"
	"github.com/angelmondragon/salonadmin/pkg/logger"
	"github.com/angelmondragon/salonadmin/pkg/metrics"
	pkgredis "github.com/angelmondragon/salonadmin/pkg/redis"
	"github.com/angelmondragon/salonadmin/pkg/salon"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

type stubPlaceService struct {
	created int
}

func (s *stubPlaceService) List(context.Context, directory.PlaceQuery) (*directory.PlaceDirectory, error) {
	return &directory.PlaceDirectory{Places: []salon.Place{{ID: 7, Name: "Studio"}}}, nil
}

func (s *stubPlaceService) Create(_ context.Context, input places.PlaceInput) (*salon.Place, error) {
	s.created++
	return &salon.Place{ID: 11, Name: input.Name}, nil
}

func (s *stubPlaceService) Update(_ context.Context, placeID int64, input places.PlaceInput) (*salon.Place, error) {
	return &salon.Place{ID: placeID, Name: input.Name}, nil
}

type memoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]string{}}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", pkgredis.ErrNotFound
}

func (m *memoryStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *memoryStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = fmt.Sprint(value)
	return true, nil
}

func (m *memoryStore) IdempotencyKey(scope, id string) string {
	return "idem:" + scope + ":" + id
}

func (m *memoryStore) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		JWT: config.JWTConfig{Secret: "router-secret", Issuer: "salonadmin", ExpirationMinutes: 30},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

type routerOptions struct {
	readiness map[string]controllers.Pinger
	store     pkgredis.IdempotencyStore
	places    places.Service
}

func newTestRouter(cfg *config.Config, opts routerOptions) (http.Handler, *prometheus.Registry) {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	reg := prometheus.NewRegistry()
	return NewRouter(
		cfg,
		logg,
		opts.readiness,
		opts.store,
		metrics.NewHTTPMetrics(reg),
		reg,
		time.UTC,
		opts.places,
		nil,
		nil,
		nil,
		nil,
	), reg
}

func buildToken(t *testing.T, cfg *config.Config, placeIDs ...int64) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:   42,
		Role:     enums.MemberRoleOwner,
		PlaceIDs: placeIDs,
		JTI:      "router-jti",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router, _ := newTestRouter(testConfig(), routerOptions{})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("X-SalonAdmin-Env"); got != "test" {
		t.Fatalf("expected env header got %q", got)
	}
}

func TestHealthReadyReportsFailingDependency(t *testing.T) {
	router, _ := newTestRouter(testConfig(), routerOptions{readiness: map[string]controllers.Pinger{
		"database": stubPinger{},
		"redis":    stubPinger{err: errors.New("connection refused")},
	}})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "DEPENDENCY_ERROR") {
		t.Fatalf("expected dependency error body got %s", resp.Body.String())
	}
}

func TestAPIRejectsMissingJWT(t *testing.T) {
	router, _ := newTestRouter(testConfig(), routerOptions{places: &stubPlaceService{}})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/places", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestPlacesListWithJWT(t *testing.T) {
	cfg := testConfig()
	router, _ := newTestRouter(cfg, routerOptions{places: &stubPlaceService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/places?type=fixed", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, 7))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"Studio"`) {
		t.Fatalf("expected place in body got %s", resp.Body.String())
	}
}

func TestPlaceRoutesRequireMembership(t *testing.T) {
	cfg := testConfig()
	router, _ := newTestRouter(cfg, routerOptions{places: &stubPlaceService{}})

	for _, path := range []string{
		"/api/v1/places/9/customers",
		"/api/v1/places/9/employees",
		"/api/v1/places/9/calendar?from=2024-03-01&to=2024-03-07",
		"/api/v1/places/9/campaign-drafts",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, 7))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403 got %d", path, resp.Code)
		}
	}
}

func TestPlaceCreateRequiresIdempotencyKey(t *testing.T) {
	cfg := testConfig()
	svc := &stubPlaceService{}
	router, _ := newTestRouter(cfg, routerOptions{places: svc, store: newMemoryStore()})
	body := `{"name":"Studio","place_type":"fixed","address":"1 Main St"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/places", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, 7))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without key got %d", resp.Code)
	}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/places", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, 7))
		req.Header.Set("Idempotency-Key", "create-1")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusCreated {
			t.Fatalf("attempt %d: expected 201 got %d: %s", i, resp.Code, resp.Body.String())
		}
		if i == 1 && resp.Header().Get("Idempotent-Replayed") != "true" {
			t.Fatalf("expected replay header on second attempt")
		}
	}
	if svc.created != 1 {
		t.Fatalf("expected one create got %d", svc.created)
	}
}

func TestMetricsEndpointExposesRequests(t *testing.T) {
	router, _ := newTestRouter(testConfig(), routerOptions{})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "/health/live") {
		t.Fatalf("expected route label in metrics output")
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	router, _ := newTestRouter(testConfig(), routerOptions{})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
