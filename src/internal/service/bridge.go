// FILE: logbridge/src/internal/service/bridge.go
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"logbridge/src/internal/config"
	"logbridge/src/internal/format"
	"logbridge/src/internal/sink"
	"logbridge/src/internal/source"

	"github.com/lixenwraith/log"
)

// Bridge wires the syslog source to its sinks: one receive loop feeding
// one or more outputs.
type Bridge struct {
	Config *config.Config
	Source source.Source
	Sinks  []sink.Sink
	Stats  *BridgeStats
	logger *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// BridgeStats contains statistics for the bridge
type BridgeStats struct {
	StartTime          time.Time
	TotalRecords       atomic.Uint64
	DroppedSinkRecords atomic.Uint64
}

// newBridge creates and starts the bridge: sinks first, then the source,
// so no record arrives before an output exists.
func (s *Service) newBridge(cfg *config.Config) (*Bridge, error) {
	s.logger.Debug("msg", "Creating bridge")

	bridgeCtx, bridgeCancel := context.WithCancel(s.ctx)

	bridge := &Bridge{
		Config: cfg,
		Stats: &BridgeStats{
			StartTime: time.Now(),
		},
		ctx:    bridgeCtx,
		cancel: bridgeCancel,
		logger: s.logger,
	}

	// Create sinks
	for i, sinkCfg := range cfg.Sinks {
		sinkInst, err := s.createSink(&sinkCfg)
		if err != nil {
			bridgeCancel()
			return nil, fmt.Errorf("failed to create sink[%d]: %w", i, err)
		}
		bridge.Sinks = append(bridge.Sinks, sinkInst)
	}

	// Create the syslog source
	src, err := source.NewSyslogSource(&cfg.Syslog, s.logger)
	if err != nil {
		bridgeCancel()
		return nil, fmt.Errorf("failed to create syslog source: %w", err)
	}
	bridge.Source = src

	// Start sinks
	for i, sinkInst := range bridge.Sinks {
		if err := sinkInst.Start(bridgeCtx); err != nil {
			bridge.Shutdown()
			return nil, fmt.Errorf("failed to start sink[%d]: %w", i, err)
		}
	}

	// Wire before starting the source so the first datagram has a reader
	bridge.run()

	if err := src.Start(); err != nil {
		bridge.Shutdown()
		return nil, fmt.Errorf("failed to start syslog source: %w", err)
	}

	s.logger.Info("msg", "Bridge created successfully")
	return bridge, nil
}

func (s *Service) createSink(cfg *config.SinkConfig) (sink.Sink, error) {
	formatter, err := format.New(cfg.Format, cfg.Text, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter: %w", err)
	}

	switch cfg.Type {
	case "eventlog":
		return sink.NewEventLogSink(cfg, s.logger, formatter)
	case "stdout", "stderr":
		return sink.NewConsoleSink(cfg.Type, cfg.BufferSize, s.logger, formatter)
	default:
		return nil, fmt.Errorf("unknown sink type: %q", cfg.Type)
	}
}

// run forwards records from the source to every sink. Slow sinks do not
// block the loop; a full sink buffer drops the record and counts it.
func (b *Bridge) run() {
	ch := b.Source.Subscribe()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			select {
			case rec, ok := <-ch:
				if !ok {
					return
				}
				b.Stats.TotalRecords.Add(1)
				for _, s := range b.Sinks {
					select {
					case s.Input() <- rec:
					default:
						b.Stats.DroppedSinkRecords.Add(1)
					}
				}
			case <-b.ctx.Done():
				return
			}
		}
	}()
}

// Shutdown gracefully stops the bridge
func (b *Bridge) Shutdown() {
	b.logger.Info("msg", "Shutting down bridge", "component", "bridge")

	b.cancel()

	// Stop the source first so no new records arrive
	if b.Source != nil {
		b.Source.Stop()
	}

	// Then stop sinks concurrently
	var wg sync.WaitGroup
	for _, s := range b.Sinks {
		wg.Add(1)
		go func(sk sink.Sink) {
			defer wg.Done()
			sk.Stop()
		}(s)
	}
	wg.Wait()

	b.wg.Wait()

	b.logger.Info("msg", "Bridge shutdown complete", "component", "bridge")
}

// GetStats returns bridge statistics
func (b *Bridge) GetStats() map[string]any {
	sourceStats := map[string]any{}
	if b.Source != nil {
		stats := b.Source.GetStats()
		sourceStats = map[string]any{
			"type":             stats.Type,
			"total_datagrams":  stats.TotalDatagrams,
			"dropped_records":  stats.DroppedRecords,
			"start_time":       stats.StartTime,
			"last_record_time": stats.LastRecordTime,
			"details":          stats.Details,
		}
	}

	sinkStats := make([]map[string]any, 0, len(b.Sinks))
	for _, s := range b.Sinks {
		if s == nil {
			continue
		}
		stats := s.GetStats()
		sinkStats = append(sinkStats, map[string]any{
			"type":            stats.Type,
			"total_processed": stats.TotalProcessed,
			"dropped_records": stats.DroppedRecords,
			"start_time":      stats.StartTime,
			"last_processed":  stats.LastProcessed,
			"details":         stats.Details,
		})
	}

	return map[string]any{
		"running":              true,
		"uptime_seconds":       int(time.Since(b.Stats.StartTime).Seconds()),
		"total_records":        b.Stats.TotalRecords.Load(),
		"dropped_sink_records": b.Stats.DroppedSinkRecords.Load(),
		"source":               sourceStats,
		"sinks":                sinkStats,
		"sink_count":           len(b.Sinks),
	}
}
