package pipeline

import "github.com/fieldgate/gridiron/pkg/logger"

// Option applies a configuration option to the Pipeline.
type Option func(*Pipeline)

// WithSeason sets the season stamped on the artifact and assumed for
// rows that omit one.
func WithSeason(season int) Option {
	return func(p *Pipeline) {
		if season > 0 {
			p.season = season
		}
	}
}

// WithStreamBuffer bounds the per-reducer channel buffer.
func WithStreamBuffer(size int) Option {
	return func(p *Pipeline) {
		if size > 0 {
			p.buffer = size
		}
	}
}

// WithLogger sets a custom logger for the pipeline.
func WithLogger(l logger.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithSource labels the artifact diagnostics with the snapshot origin.
func WithSource(name string) Option {
	return func(p *Pipeline) {
		p.source = name
	}
}
