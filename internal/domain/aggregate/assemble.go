package aggregate

import (
	"time"

	"github.com/fieldgate/gridiron/internal/domain/model"
)

// Assemble merges the three reducer outputs into the exported artifact.
// Each reducer already established its canonical order; Assemble only
// joins, it never resorts. A team absent from the 4th-down or
// early-down rows simply had no qualifying plays.
func Assemble(
	season int,
	tendency *TendencyReducer,
	fourth *FourthDownReducer,
	early *EarlyDownReducer,
	diag model.RunDiagnostics,
) model.Artifact {
	tendencies, teams := tendency.Result()
	diag.FourthBucket = fourth.Seen()
	diag.NeutralBucket = early.Seen()

	return model.Artifact{
		RunID:       diag.RunID,
		Season:      season,
		GeneratedAt: time.Now().UTC(),
		Teams:       teams,
		Tendencies:  tendencies,
		FourthDown:  fourth.Result(),
		EarlyDown:   early.Result(),
		Diagnostics: diag,
	}
}
