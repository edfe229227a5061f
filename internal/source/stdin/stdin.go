// Package stdin loads a capture from standard input, for use behind a
// pipe from the trace-ingestion tool.
package stdin

import (
	"context"
	"os"

	"github.com/crimson-sun/tracelens/internal/source"
	"github.com/crimson-sun/tracelens/pkg/trace"
)

func init() {
	source.Register("stdin", func() source.Source { return &Source{} })
}

// Source reads a JSON capture from stdin.
type Source struct{}

// Load decodes the capture from os.Stdin.
func (s *Source) Load(_ context.Context, _ source.Config) (*trace.Capture, error) {
	return trace.LoadCapture(os.Stdin)
}
