package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen11/ward-alert-service/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server serves the ward alert API. Broadcast requests block until the mesh
// agent exits, so a zero write_timeout leaves the response unbounded and
// Shutdown drains whatever is still in flight.
type Server struct {
	srv      *http.Server
	logger   *slog.Logger
	inFlight atomic.Int64

	mu    sync.Mutex
	addr  string
	ready chan struct{}
}

// NewServer builds a Server for cfg.Host:cfg.Port.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		logger: logger,
		addr:   net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
		ready:  make(chan struct{}),
	}
	s.srv = &http.Server{
		Addr:              s.addr,
		Handler:           s.track(handler),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
	return s
}

func (s *Server) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.inFlight.Add(1)
		defer s.inFlight.Add(-1)
		next.ServeHTTP(w, r)
	})
}

// Start binds the listen address and serves until Shutdown, after which it
// returns nil.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("http server listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()
	close(s.ready)

	writeTimeout := "unbounded"
	if s.srv.WriteTimeout > 0 {
		writeTimeout = s.srv.WriteTimeout.String()
	}
	s.logger.Info("starting HTTP server",
		slog.String("addr", ln.Addr().String()),
		slog.String("write_timeout", writeTimeout),
	)

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Ready is closed once the server has a listener.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown stops accepting connections and waits for in-flight requests,
// including broadcasts still waiting on the agent, until ctx expires.
// Without a deadline it allows 10s.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server", slog.Int64("in_flight", s.inFlight.Load()))
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP server shutdown incomplete",
			slog.Int64("in_flight", s.inFlight.Load()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// InFlight reports how many requests are being served.
func (s *Server) InFlight() int64 {
	return s.inFlight.Load()
}

// Addr returns the bound address once serving, the configured one before.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}
