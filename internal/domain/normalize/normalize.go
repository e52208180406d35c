// Package normalize turns loosely-typed snapshot rows into validated
// play records at the pipeline boundary. Rows that cannot be coerced
// are rejected with a reason; rejection never aborts a run.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fieldgate/gridiron/internal/domain/model"
)

// RawRow is one play as delivered by the data source. Every field is a
// string; the provider makes no type guarantees.
type RawRow struct {
	Season            string
	Team              string // posteam
	Down              string
	YardsToGo         string // ydstogo
	YardLine100       string // yardline_100, distance to the opponent's goal line
	ScoreDifferential string
	PassAttempt       string
	RushAttempt       string
	PlayType          string // provider's play_type label
	Penalty           string
}

// Play-type labels the provider uses for non-offensive snaps. These are
// valid "other" plays; labels outside this set (and without an attempt
// flag) are unclassifiable.
var otherPlayTypes = map[string]struct{}{
	"punt":        {},
	"field_goal":  {},
	"qb_kneel":    {},
	"qb_spike":    {},
	"no_play":     {},
	"extra_point": {},
}

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithSeason sets the season assumed when a row omits one.
func WithSeason(season int) Option {
	return func(n *Normalizer) {
		if season > 0 {
			n.season = season
		}
	}
}

// Normalizer validates and coerces raw rows. It is stateless and safe
// for concurrent use.
type Normalizer struct {
	season int
}

// New creates a Normalizer with the provided options.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize coerces one raw row into a PlayRecord. The returned error
// is one of this package's sentinels (possibly wrapped) and means the
// row must be dropped and counted, nothing more.
func (n *Normalizer) Normalize(row RawRow) (model.PlayRecord, error) {
	team := strings.ToUpper(strings.TrimSpace(row.Team))
	if team == "" {
		return model.PlayRecord{}, ErrMissingTeam
	}
	if !KnownTeam(team) {
		return model.PlayRecord{}, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}

	down, err := parseInt(row.Down)
	if err != nil || down < 1 || down > 4 {
		return model.PlayRecord{}, fmt.Errorf("%w: %q", ErrInvalidDown, row.Down)
	}

	playType, punt, fieldGoal, err := classifyPlayType(row)
	if err != nil {
		return model.PlayRecord{}, err
	}

	togo, err := parseInt(row.YardsToGo)
	if err != nil {
		return model.PlayRecord{}, fmt.Errorf("%w: ydstogo %q", ErrInvalidField, row.YardsToGo)
	}
	yardline100, err := parseInt(row.YardLine100)
	if err != nil {
		return model.PlayRecord{}, fmt.Errorf("%w: yardline_100 %q", ErrInvalidField, row.YardLine100)
	}
	scoreDiff, err := parseInt(row.ScoreDifferential)
	if err != nil {
		return model.PlayRecord{}, fmt.Errorf("%w: score_differential %q", ErrInvalidField, row.ScoreDifferential)
	}

	season := n.season
	if s, err := parseInt(row.Season); err == nil && s > 0 {
		season = s
	}

	return model.PlayRecord{
		Season:    season,
		Team:      team,
		Down:      down,
		Type:      playType,
		YardsToGo: togo,
		// The provider measures field position as distance to the
		// opponent's goal line; the record keeps the own-goal scale.
		YardLine:  100 - yardline100,
		ScoreDiff: scoreDiff,
		Penalty:   flagSet(row.Penalty),
		Punt:      punt,
		FieldGoal: fieldGoal,
		GoForIt:   playType == model.PlayRush || playType == model.PlayPass,
	}, nil
}

// classifyPlayType resolves the rush/pass/other classification. Attempt
// flags win over the play_type label since the provider sets the label
// to "no_play" on plays that still had an attempt.
func classifyPlayType(row RawRow) (t model.PlayType, punt, fieldGoal bool, err error) {
	switch {
	case flagSet(row.PassAttempt):
		return model.PlayPass, false, false, nil
	case flagSet(row.RushAttempt):
		return model.PlayRush, false, false, nil
	}
	label := strings.ToLower(strings.TrimSpace(row.PlayType))
	if _, ok := otherPlayTypes[label]; !ok {
		return "", false, false, fmt.Errorf("%w: %q", ErrUnknownPlayType, row.PlayType)
	}
	return model.PlayOther, label == "punt", label == "field_goal", nil
}

// flagSet interprets the provider's 0/1 indicator columns, which arrive
// as "1", "1.0", or empty.
func flagSet(s string) bool {
	v, err := parseInt(s)
	return err == nil && v == 1
}

// parseInt parses provider numerics, which may be rendered as floats
// ("3.0") by the upstream export.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") {
		return 0, fmt.Errorf("empty numeric field")
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("non-integral value %q", s)
	}
	return int(f), nil
}
