// FILE: logbridge/src/internal/source/syslog.go
package source

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"logbridge/src/internal/config"
	"logbridge/src/internal/core"
	"logbridge/src/internal/limit"
	"logbridge/src/internal/priority"

	"github.com/lixenwraith/log"
	"github.com/lixenwraith/log/compat"
	"github.com/panjf2000/gnet/v2"
)

// SyslogSource receives RFC 3164 datagrams over UDP, rewrites their PRI
// tags and publishes classified records. Datagrams are processed
// sequentially on a single event loop; a malformed datagram produces a
// best-effort error record and never stops the loop.
type SyslogSource struct {
	host        string
	port        int64
	bufferSize  int64
	sourceName  string
	maxDatagram int
	server      *syslogServer
	subscribers []chan core.Record
	mu          sync.RWMutex
	done        chan struct{}
	stopOnce    sync.Once
	engine      *gnet.Engine
	engineMu    sync.Mutex
	wg          sync.WaitGroup
	netLimiter  *limit.NetLimiter
	logger      *log.Logger

	// Statistics
	totalDatagrams     atomic.Uint64
	droppedRecords     atomic.Uint64
	invalidDatagrams   atomic.Uint64
	limitedDatagrams   atomic.Uint64
	truncatedDatagrams atomic.Uint64
	startTime          time.Time
	lastRecordTime     atomic.Value // time.Time
}

// NewSyslogSource creates a new UDP syslog source
func NewSyslogSource(cfg *config.SyslogConfig, logger *log.Logger) (*SyslogSource, error) {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("syslog source requires a valid port")
	}

	host := cfg.Host
	if host == "" {
		host = "0.0.0.0"
	}

	bufferSize := cfg.BufferSize
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	maxDatagram := int(cfg.MaxDatagramSize)
	if maxDatagram <= 0 {
		maxDatagram = core.MaxDatagramSize
	}

	sourceName := cfg.SourceName
	if sourceName == "" {
		sourceName = core.DefaultSourceName
	}

	t := &SyslogSource{
		host:        host,
		port:        cfg.Port,
		bufferSize:  bufferSize,
		sourceName:  sourceName,
		maxDatagram: maxDatagram,
		done:        make(chan struct{}),
		startTime:   time.Now(),
		netLimiter:  limit.NewNetLimiter(cfg.NetLimit, logger),
		logger:      logger,
	}
	t.lastRecordTime.Store(time.Time{})

	return t, nil
}

func (t *SyslogSource) Subscribe() <-chan core.Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan core.Record, t.bufferSize)
	t.subscribers = append(t.subscribers, ch)
	return ch
}

func (t *SyslogSource) Start() error {
	t.server = &syslogServer{source: t}

	addr := fmt.Sprintf("udp://%s:%d", t.host, t.port)

	// Reuse the application logger inside gnet
	gnetLogger := compat.NewGnetAdapter(t.logger)

	// A bind failure is fatal: it is reported here, before the loop
	// ever runs, and the caller exits
	errChan := make(chan error, 1)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.logger.Info("msg", "Syslog source starting",
			"component", "syslog_source",
			"addr", addr)

		// One event loop: datagrams are fully processed in arrival
		// order before the next receive begins
		err := gnet.Run(t.server, addr,
			gnet.WithLogger(gnetLogger),
			gnet.WithNumEventLoop(1),
		)
		if err != nil {
			t.logger.Error("msg", "Syslog source failed",
				"component", "syslog_source",
				"addr", addr,
				"error", err)
		}
		errChan <- err
	}()

	// Wait briefly for the server to start or fail
	select {
	case err := <-errChan:
		t.stopOnce.Do(func() { close(t.done) })
		t.wg.Wait()
		return err
	case <-time.After(100 * time.Millisecond):
		t.logger.Info("msg", "Syslog source started", "port", t.port)
		return nil
	}
}

func (t *SyslogSource) Stop() {
	t.logger.Info("msg", "Stopping syslog source")
	t.stopOnce.Do(func() { close(t.done) })

	t.engineMu.Lock()
	engine := t.engine
	t.engineMu.Unlock()

	if engine != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		(*engine).Stop(ctx)
	}

	if t.netLimiter != nil {
		t.netLimiter.Shutdown()
	}

	t.wg.Wait()

	t.mu.Lock()
	for _, ch := range t.subscribers {
		close(ch)
	}
	t.subscribers = nil
	t.mu.Unlock()

	t.logger.Info("msg", "Syslog source stopped")
}

func (t *SyslogSource) GetStats() Stats {
	lastRecord, _ := t.lastRecordTime.Load().(time.Time)

	var netLimitStats map[string]any
	if t.netLimiter != nil {
		netLimitStats = t.netLimiter.GetStats()
	}

	return Stats{
		Type:           "syslog",
		TotalDatagrams: t.totalDatagrams.Load(),
		DroppedRecords: t.droppedRecords.Load(),
		StartTime:      t.startTime,
		LastRecordTime: lastRecord,
		Details: map[string]any{
			"port":                t.port,
			"invalid_datagrams":   t.invalidDatagrams.Load(),
			"limited_datagrams":   t.limitedDatagrams.Load(),
			"truncated_datagrams": t.truncatedDatagrams.Load(),
			"net_limit":           netLimitStats,
		},
	}
}

// processDatagram runs one receive iteration: decode, classify by the
// first PRI tag, rewrite all tags, publish. Every failure is recoverable;
// it is reported through the sink path and the loop keeps listening.
func (t *SyslogSource) processDatagram(remoteAddr string, data []byte) {
	select {
	case <-t.done:
		// Cancelled: no further processing
		return
	default:
	}

	t.totalDatagrams.Add(1)

	if t.netLimiter != nil && !t.netLimiter.Allow(remoteAddr) {
		t.limitedDatagrams.Add(1)
		return
	}

	// RFC 3164 bounds messages at the receive buffer size; anything
	// longer is truncated before decoding
	if len(data) > t.maxDatagram {
		data = data[:t.maxDatagram]
		t.truncatedDatagrams.Add(1)
	}

	text := string(data)
	rawSize := int64(len(data))

	// The record is classified by the first tag even though the rewrite
	// touches all tags. A missing or undecodable tag fails the iteration;
	// there is no PRI-less path.
	pri, err := priority.FirstTag(text)
	if err != nil {
		t.reportFailure(remoteAddr, rawSize, err)
		return
	}

	rewritten, err := priority.RewriteTags(text)
	if err != nil {
		t.reportFailure(remoteAddr, rawSize, err)
		return
	}

	t.publish(core.Record{
		Time:       time.Now(),
		Source:     t.sourceName,
		RemoteAddr: remoteAddr,
		Message:    remoteAddr + " : " + rewritten,
		Class:      pri.Severity.Class(),
		RawSize:    rawSize,
	})
}

// reportFailure publishes a best-effort error record describing the
// failure. If no sink picks it up it is silently dropped.
func (t *SyslogSource) reportFailure(remoteAddr string, rawSize int64, cause error) {
	t.invalidDatagrams.Add(1)
	t.logger.Debug("msg", "Undecodable syslog datagram",
		"component", "syslog_source",
		"remote_addr", remoteAddr,
		"error", cause)

	t.publish(core.Record{
		Time:       time.Now(),
		Source:     t.sourceName,
		RemoteAddr: remoteAddr,
		Message:    fmt.Sprintf("%s : undecodable syslog datagram: %v", remoteAddr, cause),
		Class:      core.ClassError,
		RawSize:    rawSize,
	})
}

func (t *SyslogSource) publish(rec core.Record) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	t.lastRecordTime.Store(rec.Time)

	dropped := false
	for _, ch := range t.subscribers {
		select {
		case ch <- rec:
		default:
			dropped = true
			t.droppedRecords.Add(1)
		}
	}

	if dropped {
		t.logger.Debug("msg", "Dropped record - subscriber buffer full",
			"component", "syslog_source")
	}
}

// Handles gnet events
type syslogServer struct {
	gnet.BuiltinEventEngine
	source *SyslogSource
}

func (s *syslogServer) OnBoot(eng gnet.Engine) gnet.Action {
	// Store engine reference for shutdown
	s.source.engineMu.Lock()
	s.source.engine = &eng
	s.source.engineMu.Unlock()

	s.source.logger.Debug("msg", "Syslog source server booted",
		"component", "syslog_source",
		"port", s.source.port)
	return gnet.None
}

func (s *syslogServer) OnTraffic(c gnet.Conn) gnet.Action {
	// For UDP each OnTraffic call carries exactly one datagram
	data, err := c.Next(-1)
	if err != nil {
		s.source.logger.Error("msg", "Error reading datagram",
			"component", "syslog_source",
			"error", err)
		return gnet.None
	}

	remoteAddr := ""
	if addr := c.RemoteAddr(); addr != nil {
		remoteAddr = addr.String()
	}

	s.source.processDatagram(remoteAddr, data)
	return gnet.None
}
