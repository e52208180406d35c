// Package pipeline runs the tendency computation: normalize, classify,
// fan out to the three reducers, assemble the artifact. One call to Run
// is one complete batch over an immutable season snapshot.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fieldgate/gridiron/internal/domain/aggregate"
	"github.com/fieldgate/gridiron/internal/domain/classify"
	"github.com/fieldgate/gridiron/internal/domain/model"
	"github.com/fieldgate/gridiron/internal/domain/normalize"
	"github.com/fieldgate/gridiron/pkg/logger"
	"github.com/fieldgate/gridiron/pkg/metrics"
)

// Default pipeline configuration constants.
const (
	defaultStreamBuffer = 1024
	reducerCount        = 3
)

// Pipeline computes a full artifact from a season snapshot.
type Pipeline struct {
	season int
	buffer int
	source string
	logger logger.Logger
}

// New creates a Pipeline with the provided options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		buffer: defaultStreamBuffer,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.Get().Named("pipeline")
	}
	return p
}

// Run executes one batch over rows. It either returns a complete
// artifact or an error; it never publishes partial results. Row-level
// defects are dropped and counted, not returned.
func (p *Pipeline) Run(ctx context.Context, rows []normalize.RawRow) (model.Artifact, error) {
	if len(rows) == 0 {
		return model.Artifact{}, ErrEmptySnapshot
	}

	start := time.Now()
	runID := uuid.NewString()
	norm := normalize.New(normalize.WithSeason(p.season))

	tendency := aggregate.NewTendencyReducer()
	fourth := aggregate.NewFourthDownReducer()
	early := aggregate.NewEarlyDownReducer()

	// The reducers write disjoint outputs, so each drains its own
	// channel in its own goroutine; Assemble is the only join point.
	fo := newFanout(reducerCount, p.buffer)
	var wg sync.WaitGroup
	for i, add := range []func(model.ClassifiedPlay){tendency.Add, fourth.Add, early.Add} {
		wg.Add(1)
		go func(in <-chan model.ClassifiedPlay, add func(model.ClassifiedPlay)) {
			defer wg.Done()
			for play := range in {
				add(play)
			}
		}(fo.subscribe(i), add)
	}

	diag := model.RunDiagnostics{
		RunID:          runID,
		DropsByReason:  make(map[string]int),
		SnapshotSource: p.source,
	}
	season := p.season

	for _, row := range rows {
		diag.RowsRead++
		rec, err := norm.Normalize(row)
		if err != nil {
			reason := normalize.DropReason(err)
			diag.RowsDropped++
			diag.DropsByReason[reason]++
			metrics.RecordRowDropped(reason)
			continue
		}
		metrics.RecordRowAccepted()
		if season == 0 {
			season = rec.Season
		}

		play := classify.Classify(rec)
		if play.FourthShortMidfield {
			metrics.RecordBucketPlay("fourth_short_midfield")
		}
		if play.NeutralEarlyDown {
			metrics.RecordBucketPlay("neutral_early_down")
		}
		diag.Plays++

		if !fo.publish(ctx, play) {
			fo.close()
			wg.Wait()
			return model.Artifact{}, fmt.Errorf("run %s canceled: %w", runID, ctx.Err())
		}
	}

	fo.close()
	wg.Wait()

	if diag.Plays == 0 {
		return model.Artifact{}, fmt.Errorf("%w (%d rows dropped)", ErrNoPlays, diag.RowsDropped)
	}

	diag.BuildDuration = time.Since(start)
	artifact := aggregate.Assemble(season, tendency, fourth, early, diag)

	metrics.RecordBuild(diag.BuildDuration.Milliseconds())
	p.logger.Info(ctx, "pipeline run complete",
		logger.String("run_id", runID),
		logger.Int("rows_read", diag.RowsRead),
		logger.Int("rows_dropped", diag.RowsDropped),
		logger.Int("teams", len(artifact.Teams)),
		logger.Any("duration", diag.BuildDuration),
	)
	return artifact, nil
}
