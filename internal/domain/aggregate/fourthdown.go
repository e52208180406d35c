package aggregate

import (
	"sort"

	"github.com/fieldgate/gridiron/internal/domain/model"
)

// FourthDownReducer accumulates go-for-it decisions on short 4th downs
// between the 20s. An attempt is any qualifying snap that resolved to a
// decision: rush, pass, punt, or field goal try.
type FourthDownReducer struct {
	byTeam map[string]*fourthCounts
	seen   int
}

type fourthCounts struct {
	attempts int
	goForIt  int
}

// NewFourthDownReducer creates an empty reducer.
func NewFourthDownReducer() *FourthDownReducer {
	return &FourthDownReducer{byTeam: make(map[string]*fourthCounts)}
}

// Add folds one classified play into the accumulator. Plays outside the
// bucket, and bucket plays that are neither a decision to go nor a
// kick, are ignored.
func (r *FourthDownReducer) Add(p model.ClassifiedPlay) {
	if !p.FourthShortMidfield {
		return
	}
	decision := p.GoForIt || p.Punt || p.FieldGoal
	if !decision {
		return
	}
	c := r.byTeam[p.Team]
	if c == nil {
		c = &fourthCounts{}
		r.byTeam[p.Team] = c
	}
	c.attempts++
	if p.GoForIt {
		c.goForIt++
	}
	r.seen++
}

// Seen returns the number of bucket plays folded in, for diagnostics.
func (r *FourthDownReducer) Seen() int { return r.seen }

// Result computes per-team aggression rows sorted descending by
// aggression index, ties broken by ascending team code. The league rate
// is play-weighted: totals are summed across all teams before dividing,
// so low-volume teams are not over-weighted.
func (r *FourthDownReducer) Result() []model.FourthDownAggression {
	var leagueAttempts, leagueGo int
	for _, c := range r.byTeam {
		leagueAttempts += c.attempts
		leagueGo += c.goForIt
	}
	if leagueAttempts == 0 {
		return nil
	}
	leagueRate := float64(leagueGo) / float64(leagueAttempts)

	rows := make([]model.FourthDownAggression, 0, len(r.byTeam))
	for team, c := range r.byTeam {
		goRate := float64(c.goForIt) / float64(c.attempts)
		rows = append(rows, model.FourthDownAggression{
			Team:            team,
			Attempts:        c.attempts,
			GoForIt:         c.goForIt,
			GoRate:          goRate,
			LeagueGoRate:    leagueRate,
			AggressionIndex: goRate - leagueRate,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AggressionIndex != rows[j].AggressionIndex {
			return rows[i].AggressionIndex > rows[j].AggressionIndex
		}
		return rows[i].Team < rows[j].Team
	})
	return rows
}
