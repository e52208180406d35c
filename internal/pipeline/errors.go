package pipeline

import "errors"

// Sentinel kinds for fatal run outcomes. A run either completes and
// yields a full artifact or fails with one of these; no partial
// artifact is ever produced.
var (
	ErrEmptySnapshot = errors.New("season snapshot is empty")
	ErrNoPlays       = errors.New("no rows survived normalization")
)
