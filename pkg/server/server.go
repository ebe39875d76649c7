// Package server exposes the conversion pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz     build information
//	POST /v1/convert  convert a JSON document, respond with the artifacts
//	GET  /v1/events   websocket: every inbound text message is a JSON
//	                  document describing one selection change; every
//	                  outbound message is a host message
//
// Each websocket connection owns a [host.Session], so a client that
// changes its selection quickly only ever receives the result for its
// newest selection.
package server

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/matzehuels/framecode/pkg/host"
	"github.com/matzehuels/framecode/pkg/observability"
	"github.com/matzehuels/framecode/pkg/pipeline"
)

// DefaultAddr is the default listen address.
const DefaultAddr = "127.0.0.1:7341"

// maxDocumentSize limits request bodies and websocket messages.
const maxDocumentSize = 8 << 20

// Config configures a server.
type Config struct {
	Addr    string
	Options pipeline.Options
	Payload host.Payload
	Logger  *log.Logger
}

// Server serves the conversion API.
type Server struct {
	cfg      Config
	runner   *pipeline.Runner
	router   chi.Router
	upgrader websocket.Upgrader
	logger   *log.Logger
}

// New creates a server. A nil runner uses a default runner.
func New(runner *pipeline.Runner, cfg Config) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.Options.Logger == nil {
		cfg.Options.Logger = cfg.Logger
	}
	// fail at startup rather than on the first request
	if _, err := host.NewSession(runner, nil, host.Config{Options: cfg.Options, Payload: cfg.Payload}); err != nil {
		return nil, err
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, cfg.Logger)
	}

	s := &Server{
		cfg:    cfg,
		runner: runner,
		logger: cfg.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Get("/events", s.handleEvents)
	})
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.cfg.Addr }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// logRequests logs every request and reports it to the HTTP hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, duration)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", duration,
			"request_id", middleware.GetReqID(r.Context()))
	})
}
