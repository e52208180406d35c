package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fieldgate/gridiron/internal/domain/model"
)

// printBuildSummary renders a human-readable run report: row counts and
// the most and least aggressive teams on short 4th downs. The full
// artifact lives in the store; this is operator feedback only.
func printBuildSummary(cmd *cobra.Command, a model.Artifact) {
	out := cmd.OutOrStdout()
	d := a.Diagnostics

	fmt.Fprintf(out, "run %s: season %d, %d rows read, %d dropped, %d teams\n",
		a.RunID, a.Season, d.RowsRead, d.RowsDropped, len(a.Teams))
	for reason, n := range d.DropsByReason {
		fmt.Fprintf(out, "  dropped %-18s %d\n", reason+":", n)
	}

	if len(a.FourthDown) == 0 {
		fmt.Fprintln(out, "no qualifying 4th-down attempts in this snapshot")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Team", "Attempts", "Go", "Go Rate", "League", "Index"})

	rows := a.FourthDown
	head := summaryRows
	if head > len(rows) {
		head = len(rows)
	}
	for _, row := range rows[:head] {
		t.AppendRow(aggressionRow(row))
	}
	if len(rows) > 2*summaryRows {
		t.AppendSeparator()
	}
	if len(rows) > head {
		tail := len(rows) - summaryRows
		if tail < head {
			tail = head
		}
		for _, row := range rows[tail:] {
			t.AppendRow(aggressionRow(row))
		}
	}
	t.Render()
	fmt.Fprintf(out, "league go rate: %.1f%% over %d attempts\n",
		rows[0].LeagueGoRate*100, d.FourthBucket)
}

func aggressionRow(r model.FourthDownAggression) table.Row {
	return table.Row{
		r.Team,
		r.Attempts,
		r.GoForIt,
		fmt.Sprintf("%.1f%%", r.GoRate*100),
		fmt.Sprintf("%.1f%%", r.LeagueGoRate*100),
		fmt.Sprintf("%+.1f%%", r.AggressionIndex*100),
	}
}
