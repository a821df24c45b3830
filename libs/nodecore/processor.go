package nodecore

import (
	"fmt"
	"log/slog"
	"time"
)

// Option defines a functional option for configuring a Processor.
type Option func(*Processor)

// WithClock overrides the processor's timestamp source. Tests use this to
// pin processed_at values.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		p.now = now
	}
}

// WithLogger routes the processor's debug output to the given logger
// instead of the package logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// Processor turns raw text into a ProcessResult and tracks how many items
// it has processed. The verbosity setting is fixed at construction; the
// processed count only ever grows. It is not safe for concurrent use.
type Processor struct {
	verbose        bool
	processedCount int

	now    func() time.Time
	logger *slog.Logger
}

// Stats is a point-in-time snapshot of a Processor.
type Stats struct {
	ProcessedCount int  `json:"processed_count"`
	Verbose        bool `json:"verbose"`
}

// NewProcessor creates a Processor with the given verbosity and a zero
// processed count.
func NewProcessor(verbose bool, opts ...Option) *Processor {
	p := &Processor{
		verbose: verbose,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process ingests one item of raw text. It always succeeds: the returned
// result records the byte length of the input, the time of the call in
// RFC 3339 UTC, and the item's sequence number. The processed count is
// incremented before the result is built, so the first call reports item 1.
func (p *Processor) Process(data string) ProcessResult {
	if p.verbose {
		p.log().Debug("processing data", "length", len(data))
	}

	p.processedCount++

	return ProcessResult{
		Success: true,
		Message: fmt.Sprintf("Successfully processed item #%d", p.processedCount),
		Data: &ResultData{
			Length:      len(data),
			ProcessedAt: p.now().UTC().Format(time.RFC3339),
			ItemNumber:  p.processedCount,
		},
	}
}

// Stats returns the current processed count and verbosity setting.
func (p *Processor) Stats() Stats {
	return Stats{
		ProcessedCount: p.processedCount,
		Verbose:        p.verbose,
	}
}

func (p *Processor) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger
}
