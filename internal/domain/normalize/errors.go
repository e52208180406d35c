package normalize

import "errors"

// Sentinel kinds for row rejection. Each maps to a drop-reason counter
// in the run diagnostics.
var (
	ErrMissingTeam     = errors.New("missing offensive team code")
	ErrUnknownTeam     = errors.New("unknown offensive team code")
	ErrInvalidDown     = errors.New("down missing or outside 1-4")
	ErrUnknownPlayType = errors.New("play type not classifiable as rush, pass, or other")
	ErrInvalidField    = errors.New("required numeric field missing or malformed")
)

// Drop-reason keys used in RunDiagnostics.DropsByReason.
const (
	ReasonMissingTeam     = "missing_team"
	ReasonUnknownTeam     = "unknown_team"
	ReasonInvalidDown     = "invalid_down"
	ReasonUnknownPlayType = "unknown_play_type"
	ReasonInvalidField    = "invalid_field"
)

// DropReason maps a rejection error to its diagnostics key. Unknown
// errors fall back to the generic invalid-field bucket.
func DropReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingTeam):
		return ReasonMissingTeam
	case errors.Is(err, ErrUnknownTeam):
		return ReasonUnknownTeam
	case errors.Is(err, ErrInvalidDown):
		return ReasonInvalidDown
	case errors.Is(err, ErrUnknownPlayType):
		return ReasonUnknownPlayType
	default:
		return ReasonInvalidField
	}
}
