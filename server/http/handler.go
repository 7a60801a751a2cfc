package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/w-h-a/textproc"
	"github.com/w-h-a/textproc/processor"
	"github.com/w-h-a/textproc/provider"
	"github.com/w-h-a/textproc/store"
)

const defaultWindowHours = 24

type processRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type handler struct {
	app *textproc.App
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"api":     "LLM Text Processor",
		"version": "1.0.0",
		"endpoints": []map[string]string{
			{"path": "/process", "method": "POST", "description": "Process text with an LLM"},
			{"path": "/history", "method": "GET", "description": "Get processing history"},
			{"path": "/history/{id}", "method": "GET", "description": "Get one processed record"},
			{"path": "/stats", "method": "GET", "description": "Get processing statistics"},
			{"path": "/recent-activity/{hours}", "method": "GET", "description": "Get recent activity"},
			{"path": "/sentiment-distribution", "method": "GET", "description": "Get sentiment distribution"},
			{"path": "/health", "method": "GET", "description": "Health check"},
		},
	})
}

func (h *handler) Process(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation Error", "body must be JSON with a text field")
		return
	}

	task, ok := provider.ParseTask(r.URL.Query().Get("task"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Validation Error", fmt.Sprintf(
			"invalid task: %s. Must be one of: %s, %s, %s",
			r.URL.Query().Get("task"), provider.TaskSummarize, provider.TaskEntities, provider.TaskSentiment,
		))
		return
	}

	rec, err := h.app.Process(r.Context(), req.Text, task)
	if err != nil {
		writeProcessingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *handler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.app.History(r.Context())
	if err != nil {
		writeProcessingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *handler) Lookup(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rec, found, err := h.app.Lookup(r.Context(), id)
	if err != nil {
		writeProcessingError(w, err)
		return
	}

	if !found {
		writeError(w, http.StatusNotFound, "Not Found", fmt.Sprintf("no record with id %s", id))
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.app.Stats(r.Context())
	if err != nil {
		writeProcessingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *handler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	windowHours := float64(defaultWindowHours)

	if raw, ok := mux.Vars(r)["hours"]; ok {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Validation Error", fmt.Sprintf("hours must be a number, got %q", raw))
			return
		}
		windowHours = parsed
	}

	records, err := h.app.RecentActivity(r.Context(), windowHours)
	if err != nil {
		writeProcessingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *handler) SentimentDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.app.SentimentDistribution(r.Context())
	if err != nil {
		writeProcessingError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, distribution)
}

func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Health(r.Context()))
}

func writeProcessingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "Invalid Request", err.Error())
	case errors.Is(err, provider.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Provider Unavailable", err.Error())
	case errors.Is(err, provider.ErrRejected):
		writeError(w, http.StatusUnprocessableEntity, "Provider Rejected", err.Error())
	case errors.Is(err, processor.ErrMalformedOutput):
		slog.Error("provider integration broke its output contract", "error", err)
		writeError(w, http.StatusBadGateway, "Provider Contract Violation", err.Error())
	case errors.Is(err, store.ErrFull):
		writeError(w, http.StatusInsufficientStorage, "Store Full", err.Error())
	default:
		slog.Error("unexpected processing error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, kind string, details string) {
	writeJSON(w, status, errorResponse{Error: kind, Details: details})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
