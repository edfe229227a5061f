// Package pipeline connects a capture source, the normalization engine,
// and an output into the CLI's one-shot processing path.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crimson-sun/tracelens/internal/output"
	"github.com/crimson-sun/tracelens/internal/source"
	"github.com/crimson-sun/tracelens/pkg/tracelens"
)

// Pipeline connects a source, the engine, and an output.
type Pipeline struct {
	source source.Source
	output output.Output
}

// New creates a Pipeline from the given components.
func New(src source.Source, out output.Output) *Pipeline {
	return &Pipeline{source: src, output: out}
}

// Run loads one capture, normalizes it, and writes every request record
// to the output. The fatal input classes abort before anything is
// written; there is no partial output.
func (p *Pipeline) Run(ctx context.Context, cfg source.Config, opts ...tracelens.Option) error {
	capture, err := p.source.Load(ctx, cfg)
	if err != nil {
		return fmt.Errorf("pipeline load: %w", err)
	}

	result, err := tracelens.Normalize(capture, opts...)
	if err != nil {
		return fmt.Errorf("pipeline normalize: %w", err)
	}
	slog.Debug("capture normalized",
		"requests", len(result.Requests),
		"mainThreadEvents", len(result.MainThreadEvents),
		"requestedUrl", result.URL.RequestedURL)

	for _, req := range result.Requests {
		if err := p.output.Write(ctx, output.FormatRequest(req)); err != nil {
			return fmt.Errorf("pipeline output: %w", err)
		}
	}
	return nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
