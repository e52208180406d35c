package repository

import "errors"

// Sentinel kinds for artifact store errors.
var (
	ErrNoArtifact = errors.New("no published artifact")
	ErrOpenStore  = errors.New("open artifact store failed")
)
