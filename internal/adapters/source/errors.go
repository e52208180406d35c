package source

import "errors"

// Sentinel kinds for snapshot loading errors. All of them are fatal to
// a run; the data source is expected to deliver a complete snapshot.
var (
	ErrOpenSnapshot   = errors.New("open snapshot failed")
	ErrMissingColumn  = errors.New("snapshot missing required column")
	ErrEmptySnapshot  = errors.New("snapshot contains no rows")
	ErrMalformedInput = errors.New("snapshot is not well-formed CSV")
)
