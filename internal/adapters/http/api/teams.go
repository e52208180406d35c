// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	service "github.com/fieldgate/gridiron/internal/app"
)

// TeamsDependencies defines the interface for team queries.
type TeamsDependencies interface {
	Teams(ctx context.Context) ([]string, error)
	Tendencies(ctx context.Context, team string) (service.TeamTendencies, error)
}

// TeamsHandler handles team list and tendency requests.
type TeamsHandler struct {
	deps TeamsDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamsDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleListTeams handles GET /teams requests.
func (h *TeamsHandler) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	teams, err := h.deps.Teams(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

// HandleTeamTendencies handles GET /teams/{team}/tendencies requests.
func (h *TeamsHandler) HandleTeamTendencies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Path shape: /teams/{team}/tendencies
	rest := strings.TrimPrefix(r.URL.Path, "/teams/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "tendencies" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	tendencies, err := h.deps.Tendencies(r.Context(), parts[0])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tendencies)
}
