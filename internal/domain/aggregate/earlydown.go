package aggregate

import (
	"sort"

	"github.com/fieldgate/gridiron/internal/domain/model"
)

// EarlyDownReducer accumulates pass rates on neutral-script early
// downs. Only rush/pass snaps count; kicks and dead-ball rows never
// qualify for the bucket in the first place.
type EarlyDownReducer struct {
	byTeam map[string]*earlyCounts
	seen   int
}

type earlyCounts struct {
	plays     int
	passPlays int
}

// NewEarlyDownReducer creates an empty reducer.
func NewEarlyDownReducer() *EarlyDownReducer {
	return &EarlyDownReducer{byTeam: make(map[string]*earlyCounts)}
}

// Add folds one classified play into the accumulator.
func (r *EarlyDownReducer) Add(p model.ClassifiedPlay) {
	if !p.NeutralEarlyDown || !p.Offensive() {
		return
	}
	c := r.byTeam[p.Team]
	if c == nil {
		c = &earlyCounts{}
		r.byTeam[p.Team] = c
	}
	c.plays++
	if p.Type == model.PlayPass {
		c.passPlays++
	}
	r.seen++
}

// Seen returns the number of bucket plays folded in, for diagnostics.
func (r *EarlyDownReducer) Seen() int { return r.seen }

// Result computes per-team pass-rate rows sorted descending by
// pass-rate-over-average, ties broken by ascending team code. The
// league rate is play-weighted, same policy as the 4th-down reducer.
func (r *EarlyDownReducer) Result() []model.NeutralEarlyDownPassRate {
	var leaguePlays, leaguePasses int
	for _, c := range r.byTeam {
		leaguePlays += c.plays
		leaguePasses += c.passPlays
	}
	if leaguePlays == 0 {
		return nil
	}
	leagueRate := float64(leaguePasses) / float64(leaguePlays)

	rows := make([]model.NeutralEarlyDownPassRate, 0, len(r.byTeam))
	for team, c := range r.byTeam {
		passRate := float64(c.passPlays) / float64(c.plays)
		rows = append(rows, model.NeutralEarlyDownPassRate{
			Team:            team,
			Plays:           c.plays,
			PassPlays:       c.passPlays,
			PassRate:        passRate,
			LeaguePassRate:  leagueRate,
			PassRateOverAvg: passRate - leagueRate,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PassRateOverAvg != rows[j].PassRateOverAvg {
			return rows[i].PassRateOverAvg > rows[j].PassRateOverAvg
		}
		return rows[i].Team < rows[j].Team
	})
	return rows
}
