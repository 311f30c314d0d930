// FILE: logbridge/src/internal/sink/eventwriter.go
package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"logbridge/src/internal/config"
	"logbridge/src/internal/core"

	"github.com/lixenwraith/log"
)

// fileEventWriter is the file-backed event store: a rotating event file
// plus a JSON registry mapping source name -> category next to it.
type fileEventWriter struct {
	category     string
	registryPath string
	writer       *log.Logger // internal logger instance for event file writing
	logger       *log.Logger // application logger
	mu           sync.Mutex
}

func newFileEventWriter(cfg *config.EventLogConfig, logger *log.Logger) (*fileEventWriter, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create event directory: %w", err)
	}

	// Configuration for the internal event file writer
	writerConfig := log.DefaultConfig()
	writerConfig.Directory = cfg.Directory
	writerConfig.Name = cfg.Name
	writerConfig.EnableConsole = false // File only
	writerConfig.ShowTimestamp = false // Records carry their own timestamps
	writerConfig.ShowLevel = false     // Class is part of the line framing

	if cfg.MaxSizeMB > 0 {
		writerConfig.MaxSizeKB = cfg.MaxSizeMB * 1000
	}
	if cfg.MaxTotalSizeMB >= 0 {
		writerConfig.MaxTotalSizeKB = cfg.MaxTotalSizeMB * 1000
	}
	if cfg.RetentionHours > 0 {
		writerConfig.RetentionPeriodHrs = cfg.RetentionHours
	}

	writer := log.NewLogger()
	if err := writer.ApplyConfig(writerConfig); err != nil {
		return nil, fmt.Errorf("failed to configure event writer: %w", err)
	}
	if err := writer.Start(); err != nil {
		return nil, fmt.Errorf("failed to start event writer: %w", err)
	}

	return &fileEventWriter{
		category:     cfg.Category,
		registryPath: filepath.Join(cfg.Directory, cfg.Name+".sources.json"),
		writer:       writer,
		logger:       logger,
	}, nil
}

// EnsureSource re-reads the registry on every call so an externally
// corrupted registration is repaired on the next write.
func (w *fileEventWriter) EnsureSource(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	registry, err := w.loadRegistry()
	if err != nil {
		w.logger.Warn("msg", "Failed to read source registry",
			"component", "event_writer",
			"path", w.registryPath,
			"error", err)
		return false
	}

	if category, ok := registry[name]; ok {
		if category == w.category {
			return true
		}
		// Wrong category: delete and re-create
		w.logger.Warn("msg", "Re-registering event source under expected category",
			"component", "event_writer",
			"source", name,
			"found_category", category,
			"category", w.category)
		delete(registry, name)
	}

	registry[name] = w.category
	if err := w.saveRegistry(registry); err != nil {
		w.logger.Warn("msg", "Failed to update source registry",
			"component", "event_writer",
			"path", w.registryPath,
			"error", err)
		return false
	}
	return true
}

// Write appends one classified event line.
func (w *fileEventWriter) Write(source, text string, class core.Class) error {
	if w.writer == nil {
		return ErrSinkUnavailable
	}
	w.writer.Message(fmt.Sprintf("[%s] %s %s", strings.ToUpper(class.String()), source, text))
	return nil
}

// Close shuts down the event file writer.
func (w *fileEventWriter) Close() {
	if err := w.writer.Shutdown(2 * time.Second); err != nil {
		w.logger.Error("msg", "Error shutting down event writer",
			"component", "event_writer",
			"error", err)
	}
}

func (w *fileEventWriter) loadRegistry() (map[string]string, error) {
	data, err := os.ReadFile(w.registryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}

	registry := make(map[string]string)
	if err := json.Unmarshal(data, &registry); err != nil {
		// Corrupt registry file is rebuilt from scratch
		w.logger.Warn("msg", "Source registry corrupt, rebuilding",
			"component", "event_writer",
			"path", w.registryPath,
			"error", err)
		return make(map[string]string), nil
	}
	return registry, nil
}

func (w *fileEventWriter) saveRegistry(registry map[string]string) error {
	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(w.registryPath, data, 0o644)
}
