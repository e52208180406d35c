// Package repository defines the artifact store interface and errors.
// Each successful pipeline run persists one artifact snapshot; the
// serving layer cold-starts from the most recent one.
package repository

import (
	"context"

	"github.com/fieldgate/gridiron/internal/domain/model"
)

// Store provides durable access to published artifacts.
type Store interface {
	// SaveArtifact persists a complete artifact. A failed save leaves
	// any previously published artifact untouched.
	SaveArtifact(ctx context.Context, a model.Artifact) error

	// LatestArtifact returns the most recently published artifact.
	// Returns ErrNoArtifact when no run has ever been published.
	LatestArtifact(ctx context.Context) (model.Artifact, error)

	// Runs returns the number of published artifacts.
	Runs(ctx context.Context) (int, error)

	// Close releases the underlying database handle.
	Close() error
}
