package core

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// PrintSummary renders the per-iteration convergence trace as a table on
// w, followed by a colorized one-line verdict. This is diagnostic output
// only: it never substitutes for or reorders ribs.csv, and nothing about
// exit codes depends on it.
func PrintSummary(w io.Writer, reports []IterationReport, converged bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"iteration", "total routes", "delta"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, r := range reports {
		table.Append([]string{
			strconv.Itoa(r.Iteration),
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Delta),
		})
	}
	table.Render()

	if converged {
		color.New(color.FgGreen, color.Bold).Fprintln(w, "CONVERGED")
	} else {
		color.New(color.FgRed, color.Bold).Fprintln(w, "NON-CONVERGENT")
	}
}
