// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/okian/confplan/internal/profile"
)

// ScheduleHandler handles schedule, conflict, report, export, and
// calendar requests. They share the profile/min_score query contract.
type ScheduleHandler struct {
	deps Dependencies
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(deps Dependencies) *ScheduleHandler {
	return &ScheduleHandler{deps: deps}
}

// HandleSchedule handles GET /v1/schedule?profile=NAME&min_score=N requests.
func (h *ScheduleHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	minScore, ok := parseScore(r, "min_score", h.deps.MinScore())
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_min_score", ErrBadRequest)
		return
	}
	ranked, err := h.deps.Plan(r.Context(), r.URL.Query().Get("profile"), minScore)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranked)
}

// HandleConflicts handles GET /v1/conflicts?profile=NAME&threshold=N requests.
func (h *ScheduleHandler) HandleConflicts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	threshold, ok := parseScore(r, "threshold", h.deps.HighPriorityThreshold())
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_threshold", ErrBadRequest)
		return
	}
	conflicts, err := h.deps.Conflicts(r.Context(), r.URL.Query().Get("profile"), threshold)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conflicts)
}

// HandleReport handles GET /v1/report?profile=NAME&min_score=N requests.
func (h *ScheduleHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	minScore, ok := parseScore(r, "min_score", h.deps.MinScore())
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_min_score", ErrBadRequest)
		return
	}
	summary, err := h.deps.Report(r.Context(), r.URL.Query().Get("profile"), minScore)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HandleExport handles GET /v1/export?profile=NAME&min_score=N requests,
// streaming the ranked schedule as CSV.
func (h *ScheduleHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	minScore, ok := parseScore(r, "min_score", h.deps.MinScore())
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_min_score", ErrBadRequest)
		return
	}
	// Buffer the export so errors can still produce a clean status code.
	var buf bytes.Buffer
	if err := h.deps.ExportCSV(r.Context(), &buf, r.URL.Query().Get("profile"), minScore); err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.csv"`)
	_, _ = w.Write(buf.Bytes())
}

// HandleCalendar handles GET /v1/calendar?profile=NAME&min_score=N requests.
func (h *ScheduleHandler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	minScore, ok := parseScore(r, "min_score", h.deps.MinScore())
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_min_score", ErrBadRequest)
		return
	}
	days, err := h.deps.Calendar(r.Context(), r.URL.Query().Get("profile"), minScore)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

// writeServiceError maps service errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profile.ErrUnknownProfile):
		writeError(w, http.StatusNotFound, "unknown_profile", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
