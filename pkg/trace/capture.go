package trace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for the two fatal input classes. Callers should test
// with errors.Is; the wrapped messages carry the specific precondition
// that failed.
var (
	// ErrIncompatibleTrace marks a trace captured before the browser
	// recorded per-request connection information.
	ErrIncompatibleTrace = errors.New("trace too old to create network requests")

	// ErrMissingMetrics marks an engine result without the metric
	// scores needed for navigation timing extraction.
	ErrMissingMetrics = errors.New("missing metric scores")
)

// Capture bundles a raw trace with its trace-engine result. It is the
// unit of input to normalization.
type Capture struct {
	Trace        Trace        `json:"trace"`
	EngineResult EngineResult `json:"engineResult"`
}

// LoadCapture decodes a JSON-serialized capture from r.
func LoadCapture(r io.Reader) (*Capture, error) {
	var c Capture
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("trace: decode capture: %w", err)
	}
	return &c, nil
}

// LoadCaptureFile reads and decodes a capture from the named file.
func LoadCaptureFile(path string) (*Capture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace: open capture: %w", err)
	}
	defer f.Close()
	return LoadCapture(f)
}
