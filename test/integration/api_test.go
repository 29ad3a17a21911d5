package integration

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/dorm-area/internal/api"
	"github.com/eugenenazirov/dorm-area/internal/calculator"
	"github.com/eugenenazirov/dorm-area/internal/storage"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	store := storage.NewMemoryStorage()
	calc := calculator.New()
	handler := api.NewHandler(calc, store, api.WithLogger(zaptest.NewLogger(t)))
	logger := zaptest.NewLogger(t)
	return api.NewRouter(handler, logger)
}

func performRequest(t *testing.T, handler http.Handler, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestIntegrationFlow(t *testing.T) {
	handler := newRouter(t)

	rec := performRequest(t, handler, http.MethodGet, "/api/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected a request id header")
	}

	updatePayload := map[string]any{"items": []map[string]any{
		{"category": "Residential", "name": "General room", "area": 5000},
		{"category": "Amenity", "name": "Gym", "area": 100},
	}}
	payload, _ := json.Marshal(updatePayload)
	rec = performRequest(t, handler, http.MethodPut, "/api/reference", payload, jsonHeaders)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from reference update, got %d: %s", rec.Code, rec.Body.String())
	}

	body, _ := json.Marshal(map[string]any{"mode": "Recommended", "residents": 100})
	rec = performRequest(t, handler, http.MethodPost, "/api/compare", body, jsonHeaders)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from compare, got %d: %s", rec.Code, rec.Body.String())
	}

	var compared struct {
		Calculation struct {
			NetArea float64 `json:"netArea"`
		} `json:"calculation"`
		Comparison struct {
			GrandComputed  float64 `json:"grandComputed"`
			GrandReference float64 `json:"grandReference"`
			GrandVariance  float64 `json:"grandVariance"`
		} `json:"comparison"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&compared); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if compared.Comparison.GrandReference != 5100 {
		t.Fatalf("expected grand reference 5100, got %v", compared.Comparison.GrandReference)
	}
	if math.Abs(compared.Comparison.GrandComputed-1966.8) > 1e-6 {
		t.Fatalf("expected grand computed 1966.8, got %v", compared.Comparison.GrandComputed)
	}
	if math.Abs(compared.Comparison.GrandVariance-(1966.8-5100)) > 1e-6 {
		t.Fatalf("unexpected grand variance %v", compared.Comparison.GrandVariance)
	}
}

func TestIntegrationReverseCalculation(t *testing.T) {
	handler := newRouter(t)

	body, _ := json.Marshal(map[string]any{"mode": "Basic", "reverse": true, "targetGrossArea": 10000})
	rec := performRequest(t, handler, http.MethodPost, "/api/calculate", body, jsonHeaders)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from calculate, got %d: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Residents int     `json:"residents"`
		GrossArea float64 `json:"grossArea"`
		Reverse   bool    `json:"reverse"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !response.Reverse || response.Residents <= 0 || response.GrossArea > 10000 {
		t.Fatalf("unexpected reverse result %+v", response)
	}

	body, _ = json.Marshal(map[string]any{"reverse": true, "targetGrossArea": 100})
	rec = performRequest(t, handler, http.MethodPost, "/api/calculate", body, jsonHeaders)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unreachable target, got %d", rec.Code)
	}
}
