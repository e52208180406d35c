// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/fieldgate/gridiron/internal/domain/model"
)

// EarlyDownDependencies defines the interface for pass-rate queries.
type EarlyDownDependencies interface {
	EarlyDown(ctx context.Context) ([]model.NeutralEarlyDownPassRate, error)
}

// EarlyDownHandler handles neutral early-down pass-rate requests.
type EarlyDownHandler struct {
	deps EarlyDownDependencies
}

// NewEarlyDownHandler creates a new early-down handler.
func NewEarlyDownHandler(deps EarlyDownDependencies) *EarlyDownHandler {
	return &EarlyDownHandler{deps: deps}
}

// HandleEarlyDown handles GET /metrics/early-down requests. Rows are
// returned in their canonical order: descending pass rate over average.
func (h *EarlyDownHandler) HandleEarlyDown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows, err := h.deps.EarlyDown(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
