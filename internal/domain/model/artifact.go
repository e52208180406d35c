package model

import "time"

// TeamDownTendency is the rush/pass split for one (team, down) pair.
// Pairs with zero qualifying plays are never emitted, so the rates are
// always well defined and sum to 1.
type TeamDownTendency struct {
	Down     int     `json:"down"`
	RushRate float64 `json:"rush_rate"`
	PassRate float64 `json:"pass_rate"`
}

// FourthDownAggression is one team's go-for-it profile on short 4th
// downs between the 20s. LeagueGoRate is the play-weighted league ratio
// and is identical on every row of a run.
type FourthDownAggression struct {
	Team            string  `json:"team"`
	Attempts        int     `json:"attempts"`
	GoForIt         int     `json:"go_for_it"`
	GoRate          float64 `json:"go_rate"`
	LeagueGoRate    float64 `json:"league_go_rate"`
	AggressionIndex float64 `json:"aggression_index"`
}

// NeutralEarlyDownPassRate is one team's pass rate on neutral-script
// early downs, relative to the play-weighted league rate.
type NeutralEarlyDownPassRate struct {
	Team            string  `json:"team"`
	Plays           int     `json:"plays"`
	PassPlays       int     `json:"pass_plays"`
	PassRate        float64 `json:"pass_rate"`
	LeaguePassRate  float64 `json:"league_pass_rate"`
	PassRateOverAvg float64 `json:"pass_rate_over_avg"`
}

// RunDiagnostics records observability counters for one pipeline run.
// It travels with the artifact but is not part of the data contract.
type RunDiagnostics struct {
	RunID          string         `json:"run_id"`
	RowsRead       int            `json:"rows_read"`
	RowsDropped    int            `json:"rows_dropped"`
	DropsByReason  map[string]int `json:"drops_by_reason,omitempty"`
	Plays          int            `json:"plays"`
	FourthBucket   int            `json:"fourth_short_midfield_plays"`
	NeutralBucket  int            `json:"neutral_early_down_plays"`
	BuildDuration  time.Duration  `json:"build_duration_ns"`
	SnapshotSource string         `json:"snapshot_source,omitempty"`
}

// Artifact is the complete output of one pipeline run. It is immutable
// once assembled; the serving layer swaps whole artifacts, never fields.
type Artifact struct {
	RunID       string                        `json:"run_id"`
	Season      int                           `json:"season"`
	GeneratedAt time.Time                     `json:"generated_at"`
	Teams       []string                      `json:"teams"`      // ascending team codes with at least one tendency record
	Tendencies  map[string][]TeamDownTendency `json:"tendencies"` // per team, ordered by down
	FourthDown  []FourthDownAggression        `json:"fourth_down"` // descending aggression index
	EarlyDown   []NeutralEarlyDownPassRate    `json:"early_down"`  // descending pass rate over average
	Diagnostics RunDiagnostics                `json:"diagnostics"`
}
