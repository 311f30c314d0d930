// FILE: logbridge/src/internal/source/source.go
package source

import (
	"time"

	"logbridge/src/internal/core"
)

// Source represents an input stream of rewritten syslog records
type Source interface {
	// Returns a channel that receives records
	Subscribe() <-chan core.Record

	// Begins reading from the source
	Start() error

	// Gracefully shuts down the source
	Stop()

	// Returns source statistics
	GetStats() Stats
}

// Stats contains statistics about a source
type Stats struct {
	Type           string
	TotalDatagrams uint64
	DroppedRecords uint64
	StartTime      time.Time
	LastRecordTime time.Time
	Details        map[string]any
}
