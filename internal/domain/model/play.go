// Package model contains domain models passed between layers.
package model

// PlayType is the coarse offensive classification of a play.
type PlayType string

// Recognized play types. Anything that is neither a rush nor a pass
// attempt (kneels, spikes, punts, kicks, penalty-only rows) is Other
// and never counts toward a rate denominator.
const (
	PlayRush  PlayType = "rush"
	PlayPass  PlayType = "pass"
	PlayOther PlayType = "other"
)

// PlayRecord is one validated play from the season snapshot. All fields
// are coerced by the normalizer; downstream code can rely on them.
type PlayRecord struct {
	Season    int      // season year, e.g. 2024
	Team      string   // offensive team code, one of the 32 known abbreviations
	Down      int      // 1-4
	Type      PlayType // rush | pass | other
	YardsToGo int      // yards needed for a first down
	YardLine  int      // field position, 0-100 from the offense's own goal line
	ScoreDiff int      // offense minus defense at the snap
	Penalty   bool     // play voided by penalty
	Punt      bool
	FieldGoal bool
	GoForIt   bool // rush or pass on the play (not punt, not field goal)
}

// Offensive reports whether the play counts toward rush/pass rate
// denominators.
func (p PlayRecord) Offensive() bool {
	return p.Type == PlayRush || p.Type == PlayPass
}

// ClassifiedPlay is a PlayRecord tagged with the situational buckets it
// qualifies for. Membership is decided once by the classifier; the
// reducers only read the flags.
type ClassifiedPlay struct {
	PlayRecord

	// FourthShortMidfield: 4th down, short yardage, strictly between
	// the 20-yard lines.
	FourthShortMidfield bool

	// NeutralEarlyDown: 1st or 2nd down, standard distance, between the
	// 20s, game within one score.
	NeutralEarlyDown bool
}
