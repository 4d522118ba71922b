/*
handlers.go - HTTP handler implementations

PURPOSE:
  Implements the HTTP endpoints of the sales analytics service. Handlers are
  thin: decode, delegate to the engine/store, encode. The engine itself never
  touches HTTP.

ENDPOINTS:
  POST /api/analyze        Run analysis over a dataset in the request body
  GET  /api/report         Run analysis over the stored dataset
  GET  /api/dataset        Summarize the stored dataset
  GET  /api/scenarios      List demo scenarios
  POST /api/scenarios/{id} Seed a demo scenario into the store
  POST /api/reset          Clear the stored dataset
  GET  /api/health         Liveness check

ERROR MAPPING:
  Engine validation failures  -> 400 with the validation message
  Store failures              -> 500

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/warp/sales-analytics/analytics"
	"github.com/warp/sales-analytics/factory"
	"github.com/warp/sales-analytics/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	// Track currently loaded scenario. Guarded by mu: seeding and summary
	// requests may arrive concurrently.
	mu              sync.RWMutex
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) setScenario(id string) {
	h.mu.Lock()
	h.currentScenario = id
	h.mu.Unlock()
}

func (h *Handler) scenario() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.currentScenario
}

// =============================================================================
// ANALYSIS HANDLERS
// =============================================================================

// Analyze runs the aggregation over a dataset supplied in the request body.
// POST /api/analyze
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	opts, err := factory.BuildOptions(req.Options)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid options", err)
		return
	}

	rows, err := analytics.Analyze(req.Data, opts)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Invalid dataset", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Analysis failed", err)
		return
	}

	writeJSON(w, http.StatusOK, ReportResponse{Rows: rows, Count: len(rows)})
}

// Report runs the default analysis over the stored dataset.
// GET /api/report
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	data, err := h.Store.LoadDataset(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load dataset", err)
		return
	}

	rows, err := analytics.Analyze(data, factory.DefaultOptions())
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Stored dataset is not analyzable", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Analysis failed", err)
		return
	}

	writeJSON(w, http.StatusOK, ReportResponse{Rows: rows, Count: len(rows)})
}

// =============================================================================
// DATASET HANDLERS
// =============================================================================

// GetDataset summarizes the stored dataset.
// GET /api/dataset
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Store.Counts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read dataset", err)
		return
	}

	writeJSON(w, http.StatusOK, DatasetSummaryDTO{
		Counts:   counts,
		Scenario: h.scenario(),
	})
}

// Reset clears the stored dataset.
// POST /api/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset dataset", err)
		return
	}
	h.setScenario("")
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// Health is a liveness check.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
