// FILE: logbridge/src/internal/sink/console.go
package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"logbridge/src/internal/core"
	"logbridge/src/internal/format"

	"github.com/lixenwraith/log"
)

// ConsoleSink writes formatted records to stdout or stderr. Used for
// debug deployments where no event store is wanted.
type ConsoleSink struct {
	input     chan core.Record
	target    string
	output    io.Writer
	done      chan struct{}
	startTime time.Time
	logger    *log.Logger
	formatter format.Formatter

	// Statistics
	totalProcessed atomic.Uint64
	lastProcessed  atomic.Value // time.Time
}

// NewConsoleSink creates a console sink for target "stdout" or "stderr".
func NewConsoleSink(target string, bufferSize int64, logger *log.Logger, formatter format.Formatter) (*ConsoleSink, error) {
	var output io.Writer
	switch target {
	case "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		return nil, fmt.Errorf("unknown console target: %q", target)
	}

	if bufferSize <= 0 {
		bufferSize = 1000
	}

	s := &ConsoleSink{
		input:     make(chan core.Record, bufferSize),
		target:    target,
		output:    output,
		done:      make(chan struct{}),
		startTime: time.Now(),
		logger:    logger,
		formatter: formatter,
	}
	s.lastProcessed.Store(time.Time{})

	return s, nil
}

func (s *ConsoleSink) Input() chan<- core.Record {
	return s.input
}

func (s *ConsoleSink) Start(ctx context.Context) error {
	go s.processLoop(ctx)
	s.logger.Info("msg", "Console sink started",
		"component", "console_sink",
		"target", s.target)
	return nil
}

func (s *ConsoleSink) Stop() {
	s.logger.Info("msg", "Stopping console sink", "target", s.target)
	close(s.done)
}

func (s *ConsoleSink) GetStats() Stats {
	lastProc, _ := s.lastProcessed.Load().(time.Time)

	return Stats{
		Type:           s.target,
		TotalProcessed: s.totalProcessed.Load(),
		StartTime:      s.startTime,
		LastProcessed:  lastProc,
		Details: map[string]any{
			"target": s.target,
		},
	}
}

func (s *ConsoleSink) processLoop(ctx context.Context) {
	for {
		select {
		case rec, ok := <-s.input:
			if !ok {
				return
			}

			s.totalProcessed.Add(1)
			s.lastProcessed.Store(time.Now())

			formatted, err := s.formatter.Format(rec)
			if err != nil {
				s.logger.Error("msg", "Failed to format record for console",
					"component", "console_sink",
					"error", err)
				continue
			}
			s.output.Write(formatted)

		case <-ctx.Done():
			return
		case <-s.done:
			return
		}
	}
}
