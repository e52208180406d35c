// Package aggregate holds the per-bucket reducers and the final
// assembler. Each reducer is an independent single-pass accumulator
// over the classified play stream; none shares state with another, so
// the pipeline may run them concurrently and join at Assemble.
package aggregate

import (
	"sort"

	"github.com/fieldgate/gridiron/internal/domain/model"
)

// tendencyKey groups plays by offensive team and down.
type tendencyKey struct {
	team string
	down int
}

// TendencyReducer accumulates rush/pass counts per (team, down).
type TendencyReducer struct {
	counts map[tendencyKey]*playCounts
}

type playCounts struct {
	rush int
	pass int
}

// NewTendencyReducer creates an empty reducer.
func NewTendencyReducer() *TendencyReducer {
	return &TendencyReducer{counts: make(map[tendencyKey]*playCounts)}
}

// Add folds one classified play into the accumulator. Non-offensive
// plays never reach a denominator.
func (r *TendencyReducer) Add(p model.ClassifiedPlay) {
	if !p.Offensive() {
		return
	}
	key := tendencyKey{team: p.Team, down: p.Down}
	c := r.counts[key]
	if c == nil {
		c = &playCounts{}
		r.counts[key] = c
	}
	if p.Type == model.PlayRush {
		c.rush++
	} else {
		c.pass++
	}
}

// Result returns per-team tendency rows ordered by down, plus the
// ascending list of teams that produced at least one row. Pairs with
// zero offensive plays are absent, never fabricated as 0/0.
func (r *TendencyReducer) Result() (map[string][]model.TeamDownTendency, []string) {
	tendencies := make(map[string][]model.TeamDownTendency)
	for key, c := range r.counts {
		total := c.rush + c.pass
		if total == 0 {
			continue
		}
		tendencies[key.team] = append(tendencies[key.team], model.TeamDownTendency{
			Down:     key.down,
			RushRate: float64(c.rush) / float64(total),
			PassRate: float64(c.pass) / float64(total),
		})
	}

	teams := make([]string, 0, len(tendencies))
	for team, rows := range tendencies {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Down < rows[j].Down })
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return tendencies, teams
}
