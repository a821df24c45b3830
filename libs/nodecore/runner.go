package nodecore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// RunConfig describes one noderunner invocation.
type RunConfig struct {
	// Verbose enables debug logging on the processor.
	Verbose bool
	// Input is the input file path. Empty means process an empty string.
	Input string
	// Output is the output file path. Empty discards the result.
	Output string
	// Logger overrides the package logger when set.
	Logger *slog.Logger
}

// RunReport carries the result of one run plus the metadata the CLI
// summary table displays.
type RunReport struct {
	Result     ProcessResult
	Stats      Stats
	InputBytes int
	InputPath  string
	OutputPath string
	Duration   time.Duration
}

// Run executes one read-process-write cycle: read the input file if one is
// given, process its contents exactly once, and write the pretty-printed
// result JSON to the output path if one is given. Any I/O failure aborts
// the run with a KindIO error; there are no retries.
func Run(ctx context.Context, cfg RunConfig) (*RunReport, error) {
	start := time.Now()

	logger := cfg.Logger
	if logger == nil {
		logger = Logger
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := ""
	if cfg.Input != "" {
		raw, err := os.ReadFile(cfg.Input)
		if err != nil {
			return nil, &Error{Kind: KindIO, Op: "read input", Path: cfg.Input, Err: err}
		}
		data = string(raw)
		logger.Info("read input file", "path", cfg.Input, "bytes", len(data))
	} else {
		logger.Info("no input file provided, processing empty input")
	}

	proc := NewProcessor(cfg.Verbose, WithLogger(logger))
	result := proc.Process(data)
	logger.Info(result.Message)

	if cfg.Output != "" {
		raw, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, &Error{Kind: KindIO, Op: "encode result", Path: cfg.Output, Err: err}
		}
		if err := os.WriteFile(cfg.Output, raw, 0644); err != nil {
			return nil, &Error{Kind: KindIO, Op: "write output", Path: cfg.Output, Err: err}
		}
		logger.Info("wrote result", "path", cfg.Output)
	}

	return &RunReport{
		Result:     result,
		Stats:      proc.Stats(),
		InputBytes: len(data),
		InputPath:  cfg.Input,
		OutputPath: cfg.Output,
		Duration:   time.Since(start),
	}, nil
}
