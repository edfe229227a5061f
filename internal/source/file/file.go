// Package file loads captures from the local filesystem.
package file

import (
	"context"
	"fmt"

	"github.com/crimson-sun/tracelens/internal/source"
	"github.com/crimson-sun/tracelens/pkg/trace"
)

func init() {
	source.Register("file", func() source.Source { return &Source{} })
}

// Source reads a JSON capture file.
type Source struct{}

// Load decodes the capture at cfg.Path.
func (s *Source) Load(_ context.Context, cfg source.Config) (*trace.Capture, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file source: no capture path configured")
	}
	return trace.LoadCaptureFile(cfg.Path)
}
