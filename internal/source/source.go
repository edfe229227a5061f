// Package source abstracts where a capture is loaded from. Sources are
// registered by name so the CLI can select one from configuration, the
// same way connectors are selected in a streaming pipeline.
package source

import (
	"context"

	"github.com/crimson-sun/tracelens/pkg/trace"
)

// Source loads one capture for normalization.
type Source interface {
	Load(ctx context.Context, cfg Config) (*trace.Capture, error)
}

// Config holds source-specific settings.
type Config struct {
	Path string
}
