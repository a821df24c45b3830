package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"noderunner.io/libs/nodecore"
)

func displaySummary(w io.Writer, r *nodecore.RunReport) {
	fmt.Fprintf(w, "\n--- Run Summary ---\n")
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Metric", "Value"}),
	)

	inputSrc := r.InputPath
	if inputSrc == "" {
		inputSrc = "(empty)"
	}
	outputDest := r.OutputPath
	if outputDest == "" {
		outputDest = "(discarded)"
	}

	data := [][]string{
		{"Processed Items", fmt.Sprintf("%d", r.Stats.ProcessedCount)},
		{"Input", inputSrc},
		{"Input Size", formatBytes(int64(r.InputBytes))},
		{"Output", outputDest},
		{"Duration", r.Duration.Round(time.Millisecond).String()},
		{"Verbose", fmt.Sprintf("%t", r.Stats.Verbose)},
	}
	for _, row := range data {
		table.Append(row[0], row[1])
	}
	table.Render()
	fmt.Fprintln(w)
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
