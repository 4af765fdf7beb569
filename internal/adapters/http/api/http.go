// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	service "github.com/okian/confplan/internal/app"
	"github.com/okian/confplan/internal/calendar"
	"github.com/okian/confplan/internal/domain/model"
	"github.com/okian/confplan/internal/report"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Plan(ctx context.Context, profile string, minScore float64) ([]model.ScoredSession, error)
	Conflicts(ctx context.Context, profile string, threshold float64) ([]service.DayConflicts, error)
	Report(ctx context.Context, profile string, minScore float64) ([]report.SymposiumSummary, error)
	ExportCSV(ctx context.Context, w io.Writer, profile string, minScore float64) error
	Calendar(ctx context.Context, profile string, minScore float64) ([]calendar.Day, error)
	Profiles(ctx context.Context) []service.ProfileInfo
	RegisterProfile(ctx context.Context, name string, doc []byte) (service.ProfileInfo, error)
	Stats(ctx context.Context) service.Stats
	MinScore() float64
	HighPriorityThreshold() float64
}

// Server wires HTTP routes for the planner API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	profilesHandler *ProfilesHandler
	scheduleHandler *ScheduleHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(deps),
		profilesHandler: NewProfilesHandler(deps),
		scheduleHandler: NewScheduleHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/v1/profiles", MetricsMiddleware(s.profilesHandler.HandleProfiles, "profiles"))
	mux.HandleFunc("/v1/schedule", MetricsMiddleware(s.scheduleHandler.HandleSchedule, "schedule"))
	mux.HandleFunc("/v1/conflicts", MetricsMiddleware(s.scheduleHandler.HandleConflicts, "conflicts"))
	mux.HandleFunc("/v1/report", MetricsMiddleware(s.scheduleHandler.HandleReport, "report"))
	mux.HandleFunc("/v1/export", MetricsMiddleware(s.scheduleHandler.HandleExport, "export"))
	mux.HandleFunc("/v1/calendar", MetricsMiddleware(s.scheduleHandler.HandleCalendar, "calendar"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// parseScore reads a float query parameter, falling back when absent.
// A present but malformed value reports ok=false.
func parseScore(r *http.Request, key string, fallback float64) (float64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
