// Package source loads the season play-by-play snapshot from the data
// provider's CSV export. The snapshot is materialized fully before the
// pipeline starts; nothing here streams mid-computation.
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fieldgate/gridiron/internal/domain/normalize"
)

// Column names in the provider's play-by-play export.
const (
	colSeason    = "season"
	colTeam      = "posteam"
	colDown      = "down"
	colYardsToGo = "ydstogo"
	colYardLine  = "yardline_100"
	colScoreDiff = "score_differential"
	colPassAtt   = "pass_attempt"
	colRushAtt   = "rush_attempt"
	colPlayType  = "play_type"
	colPenalty   = "penalty"
)

// requiredColumns must be present in the header; season is optional
// since the file itself is a single-season export.
var requiredColumns = []string{
	colTeam, colDown, colYardsToGo, colYardLine,
	colScoreDiff, colPassAtt, colRushAtt, colPlayType, colPenalty,
}

// Option applies a configuration option to the CSVReader.
type Option func(*CSVReader)

// WithPath sets the snapshot file path.
func WithPath(path string) Option {
	return func(r *CSVReader) {
		if path != "" {
			r.path = path
		}
	}
}

// CSVReader reads one-row-per-play season snapshots.
type CSVReader struct {
	path string
}

// NewCSVReader creates a reader with the provided options.
func NewCSVReader(opts ...Option) *CSVReader {
	r := &CSVReader{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name identifies the snapshot origin in run diagnostics.
func (r *CSVReader) Name() string {
	return "csv:" + r.path
}

// Load reads the full snapshot into memory. Any failure here is fatal
// to the run; there are no retries and no partial loads.
func (r *CSVReader) Load(ctx context.Context) ([]normalize.RawRow, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenSnapshot, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	cr := csv.NewReader(f)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []normalize.RawRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("snapshot load canceled: %w", err)
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		rows = append(rows, normalize.RawRow{
			Season:            field(record, idx, colSeason),
			Team:              field(record, idx, colTeam),
			Down:              field(record, idx, colDown),
			YardsToGo:         field(record, idx, colYardsToGo),
			YardLine100:       field(record, idx, colYardLine),
			ScoreDifferential: field(record, idx, colScoreDiff),
			PassAttempt:       field(record, idx, colPassAtt),
			RushAttempt:       field(record, idx, colRushAtt),
			PlayType:          field(record, idx, colPlayType),
			Penalty:           field(record, idx, colPenalty),
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySnapshot, r.path)
	}
	return rows, nil
}

// columnIndex maps header names to positions, case-insensitively.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return idx, nil
}

func field(record []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
