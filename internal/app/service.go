// Package service provides the core business service that implements
// the dependencies required by the HTTP API: it runs pipeline builds
// and serves the current artifact.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fieldgate/gridiron/internal/adapters/repository"
	"github.com/fieldgate/gridiron/internal/domain/model"
	"github.com/fieldgate/gridiron/internal/domain/normalize"
	"github.com/fieldgate/gridiron/internal/pipeline"
	"github.com/fieldgate/gridiron/pkg/logger"
	"github.com/fieldgate/gridiron/pkg/metrics"
)

// Loader materializes a full season snapshot. The CSV adapter is the
// production implementation.
type Loader interface {
	Load(ctx context.Context) ([]normalize.RawRow, error)
	Name() string
}

// TeamTendencies is the per-team read shape returned to the API.
type TeamTendencies struct {
	Team       string                   `json:"team"`
	Tendencies []model.TeamDownTendency `json:"tendencies"`
}

// Service runs builds and serves the current artifact. The artifact is
// replaced wholesale on each successful build or load; readers only
// ever see a complete snapshot.
type Service struct {
	mu      sync.RWMutex
	current *model.Artifact

	store        repository.Store
	loader       Loader
	season       int
	streamBuffer int
	logger       logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the artifact store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLoader sets the snapshot loader.
func WithLoader(loader Loader) Option {
	return func(s *Service) {
		if loader != nil {
			s.loader = loader
		}
	}
}

// WithSeason sets the season assumed for snapshot rows without one.
func WithSeason(season int) Option {
	return func(s *Service) {
		if season > 0 {
			s.season = season
		}
	}
}

// WithStreamBuffer bounds the pipeline's per-reducer channel buffer.
func WithStreamBuffer(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.streamBuffer = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with the provided options.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	return s
}

// Build loads the snapshot, runs the pipeline, persists the artifact,
// and publishes it for serving. A failed build publishes nothing; any
// previously served artifact stays authoritative.
func (s *Service) Build(ctx context.Context) (model.Artifact, error) {
	if s.loader == nil {
		return model.Artifact{}, fmt.Errorf("no snapshot loader configured")
	}

	rows, err := s.loader.Load(ctx)
	if err != nil {
		metrics.RecordBuildError()
		return model.Artifact{}, fmt.Errorf("load snapshot: %w", err)
	}

	p := pipeline.New(
		pipeline.WithSeason(s.season),
		pipeline.WithStreamBuffer(s.streamBuffer),
		pipeline.WithSource(s.loader.Name()),
		pipeline.WithLogger(s.logger.Named("pipeline")),
	)
	artifact, err := p.Run(ctx, rows)
	if err != nil {
		metrics.RecordBuildError()
		return model.Artifact{}, err
	}

	if s.store != nil {
		if err := s.store.SaveArtifact(ctx, artifact); err != nil {
			metrics.RecordBuildError()
			return model.Artifact{}, fmt.Errorf("persist artifact: %w", err)
		}
	}

	s.publish(artifact)
	return artifact, nil
}

// LoadLatest publishes the most recently persisted artifact.
func (s *Service) LoadLatest(ctx context.Context) error {
	if s.store == nil {
		return repository.ErrNoArtifact
	}
	artifact, err := s.store.LatestArtifact(ctx)
	if err != nil {
		return err
	}
	s.publish(artifact)
	s.logger.Info(ctx, "serving persisted artifact",
		logger.String("run_id", artifact.RunID),
		logger.Int("season", artifact.Season),
		logger.Int("teams", len(artifact.Teams)),
	)
	return nil
}

func (s *Service) publish(a model.Artifact) {
	s.mu.Lock()
	s.current = &a
	s.mu.Unlock()
	metrics.UpdateArtifactTeams(len(a.Teams))
}

// artifact returns the current artifact or ErrNotReady.
func (s *Service) artifact() (*model.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNotReady
	}
	return s.current, nil
}

// Teams returns the team codes present in the current artifact,
// ascending.
func (s *Service) Teams(ctx context.Context) ([]string, error) {
	a, err := s.artifact()
	if err != nil {
		return nil, err
	}
	return a.Teams, nil
}

// Tendencies returns the down-by-down rush/pass rates for one team.
// Team codes are matched case-insensitively.
func (s *Service) Tendencies(ctx context.Context, team string) (TeamTendencies, error) {
	a, err := s.artifact()
	if err != nil {
		return TeamTendencies{}, err
	}
	code := strings.ToUpper(strings.TrimSpace(team))
	rows, ok := a.Tendencies[code]
	if !ok {
		return TeamTendencies{}, fmt.Errorf("%w: %s", ErrTeamNotFound, code)
	}
	return TeamTendencies{Team: code, Tendencies: rows}, nil
}

// FourthDown returns the aggression rows in their canonical order.
func (s *Service) FourthDown(ctx context.Context) ([]model.FourthDownAggression, error) {
	a, err := s.artifact()
	if err != nil {
		return nil, err
	}
	return a.FourthDown, nil
}

// EarlyDown returns the neutral pass-rate rows in their canonical order.
func (s *Service) EarlyDown(ctx context.Context) ([]model.NeutralEarlyDownPassRate, error) {
	a, err := s.artifact()
	if err != nil {
		return nil, err
	}
	return a.EarlyDown, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"artifact_loaded": s.current != nil,
	}
	if s.current != nil {
		stats["run_id"] = s.current.RunID
		stats["season"] = s.current.Season
		stats["generated_at"] = s.current.GeneratedAt
		stats["teams"] = len(s.current.Teams)
		stats["rows_read"] = s.current.Diagnostics.RowsRead
		stats["rows_dropped"] = s.current.Diagnostics.RowsDropped
		stats["drops_by_reason"] = s.current.Diagnostics.DropsByReason
		stats["fourth_short_midfield_plays"] = s.current.Diagnostics.FourthBucket
		stats["neutral_early_down_plays"] = s.current.Diagnostics.NeutralBucket
	}
	return stats
}
