// Package output defines destinations for normalized request records.
package output

import "context"

// Output defines the interface for normalized-request destinations.
type Output interface {
	Write(ctx context.Context, rec Record) error
	Close() error
}
