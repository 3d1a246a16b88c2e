// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/distmv/matvec"
	"github.com/olekukonko/tablewriter"
)

// SweepRow is one group size of a scale-invariance sweep.
type SweepRow struct {
	P           int
	Timings     matvec.Timings
	MaxAbsError float64 // against the serial reference
	Diff        float64 // max abs difference to the first row's result
	Diverged    bool
}

// SweepTable renders rows as a table, one line per group size.
func SweepTable(w io.Writer, rows []SweepRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"P", "distribute", "compute", "gather", "total", "max abs error", "diff vs first", "status"})
	for _, r := range rows {
		status := "ok"
		if r.Diverged {
			status = "diverged"
		}
		table.Append([]string{
			strconv.Itoa(r.P),
			ms(r.Timings.Distribute),
			ms(r.Timings.Compute),
			ms(r.Timings.Gather),
			ms(r.Timings.Total),
			fmt.Sprintf("%g", r.MaxAbsError),
			fmt.Sprintf("%g", r.Diff),
			status,
		})
	}
	table.Render()
}
