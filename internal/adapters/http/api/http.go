// Package api declares HTTP contracts and route registration helpers
// for the read-only query API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/fieldgate/gridiron/internal/app"
	"github.com/fieldgate/gridiron/internal/domain/model"
)

// Dependencies required by the HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service package.
type Dependencies interface {
	Teams(ctx context.Context) ([]string, error)
	Tendencies(ctx context.Context, team string) (service.TeamTendencies, error)
	FourthDown(ctx context.Context) ([]model.FourthDownAggression, error)
	EarlyDown(ctx context.Context) ([]model.NeutralEarlyDownPassRate, error)
}

// Server wires HTTP routes for the query API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	teamsHandler      *TeamsHandler
	fourthDownHandler *FourthDownHandler
	earlyDownHandler  *EarlyDownHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		teamsHandler:      NewTeamsHandler(deps),
		fourthDownHandler: NewFourthDownHandler(deps),
		earlyDownHandler:  NewEarlyDownHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleListTeams, "teams"))
	mux.HandleFunc("/teams/", MetricsMiddleware(s.teamsHandler.HandleTeamTendencies, "team_tendencies"))
	mux.HandleFunc("/metrics/fourth-down", MetricsMiddleware(s.fourthDownHandler.HandleFourthDown, "fourth_down"))
	mux.HandleFunc("/metrics/early-down", MetricsMiddleware(s.earlyDownHandler.HandleEarlyDown, "early_down"))
	mux.Handle("/metrics", MetricsHandler())
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

// writeServiceError translates service errors to status codes: an
// unpublished artifact is 503, a missing team is 404, anything else
// is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, "not_ready", err)
	case errors.Is(err, service.ErrTeamNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
