package service

import "errors"

// Sentinel kinds for serving errors. The HTTP layer translates these
// to status codes.
var (
	// ErrNotReady means no artifact has been published yet.
	ErrNotReady = errors.New("no artifact published yet")

	// ErrTeamNotFound means the requested team is absent from the
	// current artifact.
	ErrTeamNotFound = errors.New("team not found")
)
