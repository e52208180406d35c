// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/fieldgate/gridiron/internal/domain/model"
)

// FourthDownDependencies defines the interface for aggression queries.
type FourthDownDependencies interface {
	FourthDown(ctx context.Context) ([]model.FourthDownAggression, error)
}

// FourthDownHandler handles 4th-down aggression requests.
type FourthDownHandler struct {
	deps FourthDownDependencies
}

// NewFourthDownHandler creates a new fourth-down handler.
func NewFourthDownHandler(deps FourthDownDependencies) *FourthDownHandler {
	return &FourthDownHandler{deps: deps}
}

// HandleFourthDown handles GET /metrics/fourth-down requests. Rows are
// returned in their canonical order: descending aggression index.
func (h *FourthDownHandler) HandleFourthDown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows, err := h.deps.FourthDown(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
