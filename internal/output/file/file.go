// Package file writes normalized requests to an NDJSON file.
package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/crimson-sun/tracelens/internal/output"
)

const defaultBufSize = 64 * 1024 // 64KB

// Output writes NDJSON request records to a file with buffered I/O.
// A run's output is one finite request list, so there is no rotation;
// the file is truncated on open and flushed on Close.
type Output struct {
	w    *bufio.Writer
	f    *os.File
	path string
}

// New creates a file output writing to the given path.
func New(path string) (*Output, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	return &Output{
		w:    bufio.NewWriterSize(f, defaultBufSize),
		f:    f,
		path: path,
	}, nil
}

// Write JSON-encodes the record and appends it as a line.
func (o *Output) Write(_ context.Context, rec output.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	data = append(data, '\n')
	if _, err := o.w.Write(data); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}
