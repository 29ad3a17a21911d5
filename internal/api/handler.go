package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/eugenenazirov/dorm-area/internal/calculator"
	"github.com/eugenenazirov/dorm-area/internal/comparison"
	"github.com/eugenenazirov/dorm-area/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires calculator, comparison and storage dependencies into HTTP handlers.
type Handler struct {
	calculator  calculator.Calculator
	engine      *comparison.Engine
	storage     storage.Storage
	defaultMode calculator.Mode

	clock  func() time.Time
	logger *zap.Logger

	mu                 sync.RWMutex
	referenceUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithDefaultMode sets the mode used when a request does not name one.
func WithDefaultMode(mode calculator.Mode) HandlerOption {
	return func(h *Handler) {
		h.defaultMode = mode
	}
}

// WithEngine overrides the comparison engine, e.g. to use a custom name mapping.
func WithEngine(engine *comparison.Engine) HandlerOption {
	return func(h *Handler) {
		h.engine = engine
	}
}

// WithLogger sets the logger used for domain events.
func WithLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(calc calculator.Calculator, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator:  calc,
		engine:      comparison.NewEngine(nil),
		storage:     store,
		defaultMode: calculator.ModeRecommended,
		clock: func() time.Time {
			return time.Now().UTC()
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.referenceUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleModules(w http.ResponseWriter, r *http.Request) {
	_ = r
	catalog := calculator.Catalog()
	modules := make([]moduleResponse, 0, len(catalog))
	for m, area := range catalog {
		modules = append(modules, moduleResponse{Name: string(m), Area: area})
	}
	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Area < modules[j].Area
	})
	writeJSON(w, http.StatusOK, modulesResponse{Modules: modules})
}

func (h *Handler) handleGetReference(w http.ResponseWriter, r *http.Request) {
	_ = r
	items, err := h.storage.GetReference()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.referenceResponse(items, ""))
}

func (h *Handler) handlePutReference(w http.ResponseWriter, r *http.Request) {
	var req referenceRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid reference", "items must contain at least one reference line")
		return
	}

	if err := h.storage.SetReference(req.Items); err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			writeError(w, http.StatusBadRequest, "Invalid reference", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markReferenceUpdated()

	items, err := h.storage.GetReference()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	h.logger.Info("reference table updated",
		zap.Int("items", len(items)),
		zap.String("request_id", requestIDFromContext(r.Context())),
	)
	writeJSON(w, http.StatusOK, h.referenceResponse(items, "Reference table updated successfully"))
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	resp, ok := h.calculate(w, req)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	calc, ok := h.calculate(w, req)
	if !ok {
		return
	}

	items, err := h.storage.GetReference()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := compareResponse{
		Calculation: calc,
		Comparison:  h.engine.Aggregate(calc.Spaces, items),
	}
	writeJSON(w, http.StatusOK, resp)
}

// calculate resolves the request into a program. On failure it writes the error response and returns false.
func (h *Handler) calculate(w http.ResponseWriter, req calculateRequest) (calculateResponse, bool) {
	mode := h.defaultMode
	if req.Mode != "" {
		parsed, err := calculator.ParseMode(req.Mode)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
			return calculateResponse{}, false
		}
		mode = parsed
	}

	start := time.Now()

	var residents int
	if req.Reverse {
		if req.TargetGrossArea == nil {
			writeError(w, http.StatusBadRequest, "Invalid request", "targetGrossArea is required in reverse mode")
			return calculateResponse{}, false
		}
		solved, err := h.calculator.CalculateResidents(*req.TargetGrossArea, mode)
		if err != nil {
			writeCalculationError(w, err, mode)
			return calculateResponse{}, false
		}
		residents = solved
	} else {
		if req.Residents == nil {
			writeError(w, http.StatusBadRequest, "Invalid request", "residents is required")
			return calculateResponse{}, false
		}
		value := *req.Residents
		if value < 0 || value != math.Trunc(value) || value > calculator.MaxResidents {
			writeError(w, http.StatusBadRequest, "Invalid request",
				fmt.Sprintf("residents must be an integer between 0 and %d", calculator.MaxResidents))
			return calculateResponse{}, false
		}
		residents = int(value)
	}

	result, err := h.calculator.CalculateArea(residents, mode)
	if err != nil {
		writeCalculationError(w, err, mode)
		return calculateResponse{}, false
	}
	elapsed := time.Since(start)

	resp := calculateResponse{
		Result:            result,
		Reverse:           req.Reverse,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	if req.Reverse {
		resp.TargetGrossArea = req.TargetGrossArea
	}
	if perPerson, err := result.AreaPerPerson(); err == nil {
		resp.AreaPerPerson = &perPerson
	} else {
		resp.Warnings = append(resp.Warnings, "area per person is undefined for zero residents")
	}
	if residents < calculator.TypicalMinResidents || residents > calculator.TypicalMaxResidents {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("%d residents is outside the typical range of %d-%d",
			residents, calculator.TypicalMinResidents, calculator.TypicalMaxResidents))
	}
	return resp, true
}

func (h *Handler) referenceResponse(items []comparison.Item, message string) referenceResponse {
	return referenceResponse{
		Items:     items,
		Summary:   comparison.Summarize(items),
		UpdatedAt: h.currentReferenceUpdatedAt(),
		Message:   message,
	}
}

func (h *Handler) currentReferenceUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.referenceUpdatedAt
}

func (h *Handler) markReferenceUpdated() {
	h.mu.Lock()
	h.referenceUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type calculateRequest struct {
	Mode            string   `json:"mode"`
	Residents       *float64 `json:"residents"`
	TargetGrossArea *float64 `json:"targetGrossArea"`
	Reverse         bool     `json:"reverse"`
}

type referenceRequest struct {
	Items []comparison.Item `json:"items"`
}

type calculateResponse struct {
	calculator.Result
	AreaPerPerson     *float64 `json:"areaPerPerson"`
	Reverse           bool     `json:"reverse"`
	TargetGrossArea   *float64 `json:"targetGrossArea,omitempty"`
	Warnings          []string `json:"warnings,omitempty"`
	CalculationTimeMs int64    `json:"calculationTimeMs"`
}

type compareResponse struct {
	Calculation calculateResponse `json:"calculation"`
	Comparison  comparison.Report `json:"comparison"`
}

type referenceResponse struct {
	Items     []comparison.Item  `json:"items"`
	Summary   comparison.Summary `json:"summary"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Message   string             `json:"message,omitempty"`
}

type moduleResponse struct {
	Name string  `json:"name"`
	Area float64 `json:"area"`
}

type modulesResponse struct {
	Modules []moduleResponse `json:"modules"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeCalculationError(w http.ResponseWriter, err error, mode calculator.Mode) {
	switch {
	case errors.Is(err, calculator.ErrTargetUnreachable):
		suggestion := "Increase the target gross area"
		if minimum, minErr := calculator.MinimumGrossArea(mode); minErr == nil {
			suggestion = fmt.Sprintf("The fixed spaces alone need %.1f m² in %s mode; increase the target gross area", minimum, mode)
		}
		writeError(w, http.StatusUnprocessableEntity, "Target unreachable", err.Error(), suggestion)
	case errors.Is(err, calculator.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
	default:
		writeInternalError(w, err)
	}
}

// decodeRequest reads the JSON body into dst and writes a 400 or 413 response on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request too large",
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to read request body")
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
