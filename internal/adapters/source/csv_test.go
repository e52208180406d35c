package source_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldgate/gridiron/internal/adapters/source"
)

const snapshotHeader = "season,posteam,down,ydstogo,yardline_100,score_differential,pass_attempt,rush_attempt,play_type,penalty\n"

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pbp.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCSVReader(t *testing.T) {
	ctx := context.Background()

	Convey("Given a well-formed snapshot file", t, func() {
		path := writeSnapshot(t, snapshotHeader+
			"2024,KC,1,10,65,0,0,1,run,0\n"+
			"2024,KC,2,7,58,0,1,0,pass,0\n")
		r := source.NewCSVReader(source.WithPath(path))

		Convey("Then all rows load with their columns mapped", func() {
			rows, err := r.Load(ctx)

			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].Team, ShouldEqual, "KC")
			So(rows[0].YardLine100, ShouldEqual, "65")
			So(rows[0].RushAttempt, ShouldEqual, "1")
			So(rows[1].PlayType, ShouldEqual, "pass")
		})

		Convey("And the reader names the snapshot origin", func() {
			So(r.Name(), ShouldEqual, "csv:"+path)
		})
	})

	Convey("Header matching is case-insensitive", t, func() {
		path := writeSnapshot(t, "Season,POSTEAM,Down,YdsToGo,Yardline_100,Score_Differential,Pass_Attempt,Rush_Attempt,Play_Type,Penalty\n"+
			"2024,GB,1,10,40,3,1,0,pass,0\n")
		rows, err := source.NewCSVReader(source.WithPath(path)).Load(ctx)

		So(err, ShouldBeNil)
		So(rows, ShouldHaveLength, 1)
		So(rows[0].Team, ShouldEqual, "GB")
	})

	Convey("Given a snapshot missing a required column", t, func() {
		path := writeSnapshot(t, "season,posteam,down,ydstogo,yardline_100,score_differential,pass_attempt,rush_attempt,play_type\n"+
			"2024,KC,1,10,65,0,0,1,run\n")
		_, err := source.NewCSVReader(source.WithPath(path)).Load(ctx)

		So(errors.Is(err, source.ErrMissingColumn), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "penalty")
	})

	Convey("Given a header-only snapshot", t, func() {
		path := writeSnapshot(t, snapshotHeader)
		_, err := source.NewCSVReader(source.WithPath(path)).Load(ctx)

		So(errors.Is(err, source.ErrEmptySnapshot), ShouldBeTrue)
	})

	Convey("Given a path that does not exist", t, func() {
		r := source.NewCSVReader(source.WithPath(filepath.Join(t.TempDir(), "missing.csv")))
		_, err := r.Load(ctx)

		So(errors.Is(err, source.ErrOpenSnapshot), ShouldBeTrue)
	})

	Convey("Given a row with the wrong field count", t, func() {
		path := writeSnapshot(t, snapshotHeader+"2024,KC,1\n")
		_, err := source.NewCSVReader(source.WithPath(path)).Load(ctx)

		So(errors.Is(err, source.ErrMalformedInput), ShouldBeTrue)
	})

	Convey("Given a canceled context", t, func() {
		path := writeSnapshot(t, snapshotHeader+"2024,KC,1,10,65,0,0,1,run,0\n")
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := source.NewCSVReader(source.WithPath(path)).Load(canceled)

		So(errors.Is(err, context.Canceled), ShouldBeTrue)
	})
}
