// Package stdout writes normalized requests to standard output as
// NDJSON, one request per line.
package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/crimson-sun/tracelens/internal/output"
)

// Output writes JSON-encoded request records to stdout.
type Output struct {
	enc *json.Encoder
}

// New creates a stdout Output, optionally pretty-printed.
func New(pretty bool) *Output {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc}
}

func (o *Output) Write(_ context.Context, rec output.Record) error {
	if err := o.enc.Encode(rec); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
