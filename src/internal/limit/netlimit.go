// FILE: logbridge/src/internal/limit/netlimit.go
package limit

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"logbridge/src/internal/config"

	"github.com/lixenwraith/log"
	"golang.org/x/time/rate"
)

const (
	cleanupInterval = 1 * time.Minute
	senderIdleTTL   = 5 * time.Minute
)

// NetLimiter applies a per-sender token bucket to incoming datagrams.
// UDP has no connections to track; limiting is keyed by source address.
type NetLimiter struct {
	cfg     config.NetLimitConfig
	logger  *log.Logger
	senders sync.Map // host -> *senderLimiter
	done    chan struct{}
	wg      sync.WaitGroup

	// Statistics
	totalDatagrams   atomic.Uint64
	blockedDatagrams atomic.Uint64
}

type senderLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewNetLimiter returns nil when limiting is disabled.
func NewNetLimiter(cfg config.NetLimitConfig, logger *log.Logger) *NetLimiter {
	if !cfg.Enabled {
		return nil
	}

	n := &NetLimiter{
		cfg:    cfg,
		logger: logger,
		done:   make(chan struct{}),
	}

	n.wg.Add(1)
	go n.cleanupLoop()

	return n
}

// Allow reports whether a datagram from remoteAddr may be processed.
func (n *NetLimiter) Allow(remoteAddr string) bool {
	n.totalDatagrams.Add(1)

	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		// Unparseable sender, limit by the raw string
		host = remoteAddr
	}

	sl := n.sender(host)
	sl.lastSeen.Store(time.Now().UnixNano())

	if !sl.limiter.Allow() {
		n.blockedDatagrams.Add(1)
		n.logger.Debug("msg", "Datagram rate limited",
			"component", "net_limiter",
			"sender", host)
		return false
	}
	return true
}

func (n *NetLimiter) sender(host string) *senderLimiter {
	if val, ok := n.senders.Load(host); ok {
		return val.(*senderLimiter)
	}

	sl := &senderLimiter{
		limiter: rate.NewLimiter(rate.Limit(n.cfg.RequestsPerSecond), int(n.cfg.BurstSize)),
	}
	actual, _ := n.senders.LoadOrStore(host, sl)
	return actual.(*senderLimiter)
}

// Shutdown stops the cleanup goroutine.
func (n *NetLimiter) Shutdown() {
	close(n.done)
	n.wg.Wait()
}

func (n *NetLimiter) GetStats() map[string]any {
	count := 0
	n.senders.Range(func(_, _ any) bool {
		count++
		return true
	})

	return map[string]any{
		"total_datagrams":     n.totalDatagrams.Load(),
		"blocked_datagrams":   n.blockedDatagrams.Load(),
		"tracked_senders":     count,
		"requests_per_second": n.cfg.RequestsPerSecond,
		"burst_size":          n.cfg.BurstSize,
	}
}

// cleanupLoop drops limiters for senders not seen within the TTL.
func (n *NetLimiter) cleanupLoop() {
	defer n.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-n.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-senderIdleTTL).UnixNano()
			n.senders.Range(func(key, val any) bool {
				if val.(*senderLimiter).lastSeen.Load() < cutoff {
					n.senders.Delete(key)
				}
				return true
			})
		}
	}
}
