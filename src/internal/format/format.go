// FILE: logbridge/src/internal/format/format.go
package format

import (
	"fmt"

	"logbridge/src/internal/config"
	"logbridge/src/internal/core"

	"github.com/lixenwraith/log"
)

// Formatter transforms a Record into the byte form a sink writes.
type Formatter interface {
	// Format takes a Record and returns the formatted line as a byte slice.
	Format(rec core.Record) ([]byte, error)

	// Name returns the formatter type name
	Name() string
}

// New creates a Formatter for the named type.
func New(name string, opts *config.TextFormatterOptions, logger *log.Logger) (Formatter, error) {
	// Default to raw if no format specified
	if name == "" {
		name = "raw"
	}

	switch name {
	case "txt":
		return NewTextFormatter(opts, logger)
	case "raw":
		return NewRawFormatter(logger)
	default:
		return nil, fmt.Errorf("unknown formatter type: %s", name)
	}
}
