// FILE: logbridge/src/internal/service/status.go
package service

import (
	"encoding/json"
	"fmt"
	"time"

	"logbridge/src/internal/auth"
	"logbridge/src/internal/config"
	"logbridge/src/internal/version"

	"github.com/lixenwraith/log"
	"github.com/valyala/fasthttp"
)

// StatusServer exposes bridge statistics over HTTP.
type StatusServer struct {
	cfg    *config.StatusConfig
	svc    *Service
	server *fasthttp.Server
	auth   *auth.Authenticator
	logger *log.Logger
}

// NewStatusServer creates the status server; returns nil when disabled.
func NewStatusServer(cfg *config.StatusConfig, svc *Service, logger *log.Logger) (*StatusServer, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	authenticator, err := auth.New(cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize status auth: %w", err)
	}

	s := &StatusServer{
		cfg:    cfg,
		svc:    svc,
		auth:   authenticator,
		logger: logger,
	}
	s.server = &fasthttp.Server{
		Handler:          s.requestHandler,
		DisableKeepalive: false,
	}

	return s, nil
}

// Start begins serving in the background.
func (s *StatusServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.server.ListenAndServe(addr)
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("status server failed: %w", err)
	case <-time.After(100 * time.Millisecond):
		s.logger.Info("msg", "Status server started",
			"component", "status_server",
			"addr", addr)
		return nil
	}
}

// Shutdown stops the server.
func (s *StatusServer) Shutdown() {
	if err := s.server.Shutdown(); err != nil {
		s.logger.Error("msg", "Error shutting down status server",
			"component", "status_server",
			"error", err)
	}
}

func (s *StatusServer) requestHandler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/healthz":
		ctx.SetContentType("application/json")
		json.NewEncoder(ctx).Encode(map[string]string{"status": "ok"})

	case "/status":
		if s.auth != nil {
			header := string(ctx.Request.Header.Peek("Authorization"))
			if err := s.auth.CheckHTTP(header); err != nil {
				s.logger.Warn("msg", "Status request rejected",
					"component", "status_server",
					"remote_addr", ctx.RemoteAddr().String(),
					"error", err)
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				ctx.SetContentType("application/json")
				json.NewEncoder(ctx).Encode(map[string]string{"error": "unauthorized"})
				return
			}
		}

		ctx.SetContentType("application/json")
		status := map[string]any{
			"service": "logbridge",
			"version": version.Short(),
			"bridge":  s.svc.GetStats(),
		}
		json.NewEncoder(ctx).Encode(status)

	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.SetContentType("application/json")
		json.NewEncoder(ctx).Encode(map[string]string{"error": "not found"})
	}
}
