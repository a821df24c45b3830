package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"noderunner.io/libs/nodecore"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplaySummary(t *testing.T) {
	var buf bytes.Buffer
	displaySummary(&buf, &nodecore.RunReport{
		Result:     nodecore.ProcessResult{Success: true, Message: "Successfully processed item #1"},
		Stats:      nodecore.Stats{ProcessedCount: 1, Verbose: false},
		InputBytes: 5,
		InputPath:  "in.txt",
		OutputPath: "",
		Duration:   12 * time.Millisecond,
	})

	out := buf.String()
	for _, want := range []string{"Run Summary", "Processed Items", "in.txt", "(discarded)", "5 B"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}
