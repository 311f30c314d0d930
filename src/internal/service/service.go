// FILE: logbridge/src/internal/service/service.go
package service

import (
	"context"
	"fmt"
	"sync"

	"logbridge/src/internal/config"

	"github.com/lixenwraith/log"
)

// Service owns the bridge and its lifecycle. The bridge binds a single
// UDP socket, so there is exactly one of it per process.
type Service struct {
	bridge *Bridge
	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
	logger *log.Logger
}

// New creates a new, empty service.
func New(ctx context.Context, logger *log.Logger) *Service {
	serviceCtx, cancel := context.WithCancel(ctx)
	return &Service{
		ctx:    serviceCtx,
		cancel: cancel,
		logger: logger,
	}
}

// StartBridge builds and starts the bridge from config.
func (s *Service) StartBridge(cfg *config.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bridge != nil {
		return fmt.Errorf("bridge already running")
	}

	bridge, err := s.newBridge(cfg)
	if err != nil {
		return err
	}

	s.bridge = bridge
	return nil
}

// GetStats returns aggregated bridge statistics.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	bridge := s.bridge
	s.mu.RUnlock()

	if bridge == nil {
		return map[string]any{"running": false}
	}
	return bridge.GetStats()
}

// Shutdown gracefully stops the bridge.
func (s *Service) Shutdown() {
	s.logger.Info("msg", "Service shutdown initiated")

	s.mu.Lock()
	bridge := s.bridge
	s.bridge = nil
	s.mu.Unlock()

	s.cancel()

	if bridge != nil {
		bridge.Shutdown()
	}

	s.logger.Info("msg", "Service shutdown complete")
}
