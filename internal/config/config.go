// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New; file and env values layer on top.
// - External errors must be wrapped via this package's error helpers.
package config

import "context"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Season is the season year assumed for snapshot rows without one.
	Season int `koanf:"season"`

	// SnapshotPath points at the season play-by-play CSV export.
	SnapshotPath string `koanf:"snapshot_path"`

	// ArtifactDBPath is the sqlite file holding published artifacts.
	ArtifactDBPath string `koanf:"artifact_db_path"`

	// StreamBuffer bounds the per-reducer play channel in the pipeline.
	StreamBuffer int `koanf:"stream_buffer"`

	// BuildOnStart makes `serve` run a build when the store holds no
	// artifact yet.
	BuildOnStart bool `koanf:"build_on_start"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8090",
		Season:         2024,
		SnapshotPath:   "data/pbp.csv",
		ArtifactDBPath: "gridiron.db",
		StreamBuffer:   1024,
		BuildOnStart:   true,
	}
}
