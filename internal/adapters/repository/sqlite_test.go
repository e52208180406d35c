package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldgate/gridiron/internal/adapters/repository"
	"github.com/fieldgate/gridiron/internal/domain/model"
)

func testArtifact(runID string, generatedAt time.Time) model.Artifact {
	return model.Artifact{
		RunID:       runID,
		Season:      2024,
		GeneratedAt: generatedAt,
		Teams:       []string{"CHI", "GB"},
		Tendencies: map[string][]model.TeamDownTendency{
			"CHI": {{Down: 1, RushRate: 0.4, PassRate: 0.6}},
			"GB":  {{Down: 1, RushRate: 0.5, PassRate: 0.5}},
		},
		FourthDown: []model.FourthDownAggression{
			{Team: "GB", Attempts: 4, GoForIt: 3, GoRate: 0.75, LeagueGoRate: 0.5, AggressionIndex: 0.25},
		},
		Diagnostics: model.RunDiagnostics{
			RunID:         runID,
			RowsRead:      100,
			RowsDropped:   5,
			DropsByReason: map[string]int{"unknown_team": 5},
			Plays:         95,
		},
	}
}

func newStore(ctx context.Context, t *testing.T) *repository.SQLiteStore {
	t.Helper()
	store, err := repository.NewSQLiteStore(ctx,
		repository.WithPath(filepath.Join(t.TempDir(), "artifacts.db")))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fresh artifact store", t, func() {
		store := newStore(ctx, t)

		Convey("Then there is no latest artifact yet", func() {
			_, err := store.LatestArtifact(ctx)
			So(errors.Is(err, repository.ErrNoArtifact), ShouldBeTrue)

			n, err := store.Runs(ctx)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)
		})

		Convey("When an artifact is saved and loaded back", func() {
			saved := testArtifact("run-1", time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC))
			So(store.SaveArtifact(ctx, saved), ShouldBeNil)

			loaded, err := store.LatestArtifact(ctx)

			Convey("Then the round trip preserves the analytical content", func() {
				So(err, ShouldBeNil)
				So(loaded.RunID, ShouldEqual, "run-1")
				So(loaded.Season, ShouldEqual, 2024)
				So(loaded.Teams, ShouldResemble, saved.Teams)
				So(loaded.Tendencies, ShouldResemble, saved.Tendencies)
				So(loaded.FourthDown, ShouldResemble, saved.FourthDown)
				So(loaded.Diagnostics.DropsByReason, ShouldResemble, saved.Diagnostics.DropsByReason)
			})
		})

		Convey("When two runs are published", func() {
			older := testArtifact("run-1", time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC))
			newer := testArtifact("run-2", time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC))
			So(store.SaveArtifact(ctx, older), ShouldBeNil)
			So(store.SaveArtifact(ctx, newer), ShouldBeNil)

			Convey("Then the latest one wins", func() {
				loaded, err := store.LatestArtifact(ctx)
				So(err, ShouldBeNil)
				So(loaded.RunID, ShouldEqual, "run-2")
			})

			Convey("And both runs remain on record", func() {
				n, err := store.Runs(ctx)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)
			})
		})

		Convey("Saving the same run twice is rejected", func() {
			a := testArtifact("run-1", time.Now().UTC())
			So(store.SaveArtifact(ctx, a), ShouldBeNil)
			So(store.SaveArtifact(ctx, a), ShouldNotBeNil)
		})
	})

	Convey("The store reopens an existing database", t, func() {
		path := filepath.Join(t.TempDir(), "artifacts.db")
		first, err := repository.NewSQLiteStore(ctx, repository.WithPath(path))
		So(err, ShouldBeNil)
		So(first.SaveArtifact(ctx, testArtifact("run-1", time.Now().UTC())), ShouldBeNil)
		So(first.Close(), ShouldBeNil)

		second, err := repository.NewSQLiteStore(ctx, repository.WithPath(path))
		So(err, ShouldBeNil)
		defer second.Close() //nolint:errcheck // test cleanup

		loaded, err := second.LatestArtifact(ctx)
		So(err, ShouldBeNil)
		So(loaded.RunID, ShouldEqual, "run-1")
	})
}
