package normalize_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldgate/gridiron/internal/domain/model"
	"github.com/fieldgate/gridiron/internal/domain/normalize"
)

func validRow() normalize.RawRow {
	return normalize.RawRow{
		Season:            "2024",
		Team:              "JAX",
		Down:              "1",
		YardsToGo:         "10",
		YardLine100:       "65",
		ScoreDifferential: "-3",
		PassAttempt:       "1",
		RushAttempt:       "0",
		PlayType:          "pass",
		Penalty:           "0",
	}
}

func TestNormalize(t *testing.T) {
	Convey("Given a normalizer", t, func() {
		n := normalize.New(normalize.WithSeason(2024))

		Convey("When normalizing a valid pass play", func() {
			rec, err := n.Normalize(validRow())

			So(err, ShouldBeNil)
			So(rec.Team, ShouldEqual, "JAX")
			So(rec.Down, ShouldEqual, 1)
			So(rec.Type, ShouldEqual, model.PlayPass)
			So(rec.YardsToGo, ShouldEqual, 10)
			// yardline_100 is distance to the opponent goal; the record
			// keeps the own-goal scale.
			So(rec.YardLine, ShouldEqual, 35)
			So(rec.ScoreDiff, ShouldEqual, -3)
			So(rec.GoForIt, ShouldBeTrue)
			So(rec.Offensive(), ShouldBeTrue)
		})

		Convey("When the team code is lowercase with whitespace", func() {
			row := validRow()
			row.Team = " jax "
			rec, err := n.Normalize(row)

			So(err, ShouldBeNil)
			So(rec.Team, ShouldEqual, "JAX")
		})

		Convey("When the team code is missing", func() {
			row := validRow()
			row.Team = ""
			_, err := n.Normalize(row)

			So(errors.Is(err, normalize.ErrMissingTeam), ShouldBeTrue)
			So(normalize.DropReason(err), ShouldEqual, normalize.ReasonMissingTeam)
		})

		Convey("When the team code is not one of the 32", func() {
			row := validRow()
			row.Team = "XYZ"
			_, err := n.Normalize(row)

			So(errors.Is(err, normalize.ErrUnknownTeam), ShouldBeTrue)
			So(normalize.DropReason(err), ShouldEqual, normalize.ReasonUnknownTeam)
		})

		Convey("When the down is out of range or missing", func() {
			row := validRow()
			row.Down = "5"
			_, err := n.Normalize(row)
			So(errors.Is(err, normalize.ErrInvalidDown), ShouldBeTrue)

			row.Down = ""
			_, err = n.Normalize(row)
			So(errors.Is(err, normalize.ErrInvalidDown), ShouldBeTrue)

			row.Down = "NA"
			_, err = n.Normalize(row)
			So(errors.Is(err, normalize.ErrInvalidDown), ShouldBeTrue)
		})

		Convey("When numeric fields carry a float rendering", func() {
			row := validRow()
			row.Down = "1.0"
			row.YardsToGo = "10.0"
			row.PassAttempt = "1.0"
			rec, err := n.Normalize(row)

			So(err, ShouldBeNil)
			So(rec.Down, ShouldEqual, 1)
			So(rec.YardsToGo, ShouldEqual, 10)
			So(rec.Type, ShouldEqual, model.PlayPass)
		})

		Convey("When the play is a punt", func() {
			row := validRow()
			row.PassAttempt = "0"
			row.PlayType = "punt"
			rec, err := n.Normalize(row)

			So(err, ShouldBeNil)
			So(rec.Type, ShouldEqual, model.PlayOther)
			So(rec.Punt, ShouldBeTrue)
			So(rec.GoForIt, ShouldBeFalse)
			So(rec.Offensive(), ShouldBeFalse)
		})

		Convey("When the play is a field goal attempt", func() {
			row := validRow()
			row.PassAttempt = "0"
			row.PlayType = "field_goal"
			rec, err := n.Normalize(row)

			So(err, ShouldBeNil)
			So(rec.FieldGoal, ShouldBeTrue)
			So(rec.GoForIt, ShouldBeFalse)
		})

		Convey("When a kneel has no attempt flags", func() {
			row := validRow()
			row.PassAttempt = "0"
			row.PlayType = "qb_kneel"
			rec, err := n.Normalize(row)

			So(err, ShouldBeNil)
			So(rec.Type, ShouldEqual, model.PlayOther)
		})

		Convey("When the play type is unclassifiable", func() {
			row := validRow()
			row.PassAttempt = "0"
			row.PlayType = "halftime_show"
			_, err := n.Normalize(row)

			So(errors.Is(err, normalize.ErrUnknownPlayType), ShouldBeTrue)
			So(normalize.DropReason(err), ShouldEqual, normalize.ReasonUnknownPlayType)
		})

		Convey("When a required numeric field is malformed", func() {
			row := validRow()
			row.YardsToGo = "ten"
			_, err := n.Normalize(row)

			So(err, ShouldNotBeNil)
			So(normalize.DropReason(err), ShouldEqual, normalize.ReasonInvalidField)
		})

		Convey("When the row omits the season", func() {
			row := validRow()
			row.Season = ""
			rec, err := n.Normalize(row)

			So(err, ShouldBeNil)
			So(rec.Season, ShouldEqual, 2024)
		})

		Convey("When a penalty voided the play", func() {
			row := validRow()
			row.Penalty = "1"
			rec, err := n.Normalize(row)

			So(err, ShouldBeNil)
			So(rec.Penalty, ShouldBeTrue)
		})
	})
}

func TestKnownTeam(t *testing.T) {
	Convey("The canonical team set has exactly 32 codes", t, func() {
		So(normalize.KnownTeam("KC"), ShouldBeTrue)
		So(normalize.KnownTeam("LA"), ShouldBeTrue)
		So(normalize.KnownTeam("OAK"), ShouldBeFalse) // relocated
		So(normalize.KnownTeam(""), ShouldBeFalse)
	})
}
