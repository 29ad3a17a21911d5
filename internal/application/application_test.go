package application

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/dorm-area/internal/calculator"
	"github.com/eugenenazirov/dorm-area/internal/comparison"
	"github.com/eugenenazirov/dorm-area/internal/config"
	"github.com/eugenenazirov/dorm-area/internal/storage"
)

func TestNewInitializesDependencies(t *testing.T) {
	cfg := baseTestConfig(":8085")
	logger := zaptest.NewLogger(t)

	app, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	items, err := app.storage.GetReference()
	if err != nil {
		t.Fatalf("GetReference returned error: %v", err)
	}
	if want := storage.DefaultReference(); !slices.Equal(items, want) {
		t.Fatalf("expected built-in reference %v, got %v", want, items)
	}
	if app.server == nil || app.router == nil || app.handler == nil || app.engine == nil || app.calculator == nil {
		t.Fatalf("expected server, router, handler, engine and calculator to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}
}

func TestNewLoadsReferenceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	content := []byte(`items:
  - category: Residential
    name: General room
    area: 5000
  - category: Amenity
    name: Fitness centre
    area: 300
mapping:
  Gym: [Fitness centre]
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write reference file: %v", err)
	}

	cfg := baseTestConfig(":0")
	cfg.ReferenceFile = path

	app, err := New(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	items, err := app.storage.GetReference()
	if err != nil {
		t.Fatalf("GetReference returned error: %v", err)
	}
	want := []comparison.Item{
		{Category: "Residential", Name: "General room", Area: 5000},
		{Category: "Amenity", Name: "Fitness centre", Area: 300},
	}
	if !slices.Equal(items, want) {
		t.Fatalf("expected %v, got %v", want, items)
	}

	res, err := app.calculator.CalculateArea(100, calculator.ModeRecommended)
	if err != nil {
		t.Fatalf("CalculateArea returned error: %v", err)
	}
	report := app.engine.Aggregate(res.Spaces, items)
	if report.GrandReference != 5300 {
		t.Fatalf("expected custom mapping to fold Fitness centre into Gym, got grand reference %v", report.GrandReference)
	}
}

func TestNewReturnsErrorForInvalidReferenceFile(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.ReferenceFile = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := New(cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error for missing reference file")
	}
}

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := baseTestConfig("9090")
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != cfg.ReadHeaderTimeout ||
		server.WriteTimeout != cfg.WriteTimeout ||
		server.IdleTimeout != cfg.IdleTimeout {
		t.Fatalf("server timeouts do not match configuration")
	}
}

func TestBuildRootHandler(t *testing.T) {
	apiInvoked := false
	apiHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Fatalf("unexpected path passed to API handler: %s", r.URL.Path)
		}
		apiInvoked = true
		w.WriteHeader(http.StatusNoContent)
	})

	handler := BuildRootHandler(apiHandler)

	t.Run("serves index", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if rec.Header().Get("Content-Type") == "" {
			t.Fatalf("expected Content-Type header for index page")
		}
	})

	t.Run("returns not found for unknown paths", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("forwards api traffic", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", rec.Code)
		}
		if !apiInvoked {
			t.Fatalf("expected API handler to be invoked")
		}
	})
}

func baseTestConfig(port string) config.Config {
	return config.Config{
		Port:                 port,
		DefaultMode:          calculator.ModeRecommended,
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}
