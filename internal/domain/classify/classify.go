// Package classify tags validated plays with situational bucket
// membership. Classification is a pure function of the play record;
// the same record always yields the same tags.
package classify

import "github.com/fieldgate/gridiron/internal/domain/model"

// Situational policy constants. These are league-analysis policy, not
// derived values; do not change them without domain sign-off.
const (
	// Short yardage on 4th down: 1-3 yards to go.
	shortYardageMin = 1
	shortYardageMax = 3

	// Standard distance on early downs: 7-10 yards to go.
	neutralYardageMin = 7
	neutralYardageMax = 10

	// "Between the 20s" is an open interval on the 0-100 own-goal
	// scale: a snap exactly on either 20-yard line does not qualify.
	midfieldLow  = 20
	midfieldHigh = 80

	// Neutral game script: within one score either way.
	neutralScoreMargin = 7
)

// Classify tags a play with the buckets it qualifies for. Plays voided
// by penalty belong to no bucket.
func Classify(p model.PlayRecord) model.ClassifiedPlay {
	c := model.ClassifiedPlay{PlayRecord: p}
	if p.Penalty {
		return c
	}

	betweenTwenties := p.YardLine > midfieldLow && p.YardLine < midfieldHigh

	c.FourthShortMidfield = p.Down == 4 &&
		p.YardsToGo >= shortYardageMin && p.YardsToGo <= shortYardageMax &&
		betweenTwenties

	c.NeutralEarlyDown = (p.Down == 1 || p.Down == 2) &&
		p.YardsToGo >= neutralYardageMin && p.YardsToGo <= neutralYardageMax &&
		betweenTwenties &&
		abs(p.ScoreDiff) <= neutralScoreMargin

	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
