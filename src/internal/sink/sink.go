// FILE: logbridge/src/internal/sink/sink.go
package sink

import (
	"context"
	"errors"
	"time"

	"logbridge/src/internal/core"
)

// ErrSinkUnavailable is returned by an EventWriter whose backend cannot
// accept writes. The bridge treats it as non-fatal and drops the record
// silently: the failure of the thing meant to log failures cannot itself
// be logged.
var ErrSinkUnavailable = errors.New("sink unavailable")

// Sink represents an output destination for records
type Sink interface {
	// Input returns the channel for sending records to this sink
	Input() chan<- core.Record

	// Start begins processing records
	Start(ctx context.Context) error

	// Stop gracefully shuts down the sink
	Stop()

	// GetStats returns sink statistics
	GetStats() Stats
}

// Stats contains statistics about a sink
type Stats struct {
	Type           string
	TotalProcessed uint64
	DroppedRecords uint64
	StartTime      time.Time
	LastProcessed  time.Time
	Details        map[string]any
}

// EventWriter is the capability an event store exposes to the bridge. It
// is a small interface so tests can substitute a fake backend.
type EventWriter interface {
	// EnsureSource idempotently registers name under the writer's
	// category. A source found under a different category is deleted and
	// re-created. Reports whether the source is now usable.
	EnsureSource(name string) bool

	// Write appends text under source, classified by class.
	Write(source, text string, class core.Class) error
}
