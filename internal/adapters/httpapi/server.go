package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/neuralshield/neuralshield/internal/core"
	"github.com/neuralshield/neuralshield/internal/session"
)

// ModelInfo is the artifact metadata surfaced on the health endpoint.
type ModelInfo struct {
	Version   string `json:"model_version"`
	Type      string `json:"model_type"`
	TrainedAt string `json:"trained_at"`
}

// Server exposes the scan engine to the dashboard collaborator as a JSON
// API. It owns no scan logic; everything delegates to the ScanService.
type Server struct {
	service         *core.ScanService
	sessions        *session.Store
	logger          *zap.Logger
	registry        *prometheus.Registry
	modelInfo       ModelInfo
	listenAddr      string
	shutdownTimeout time.Duration
	httpServer      *http.Server
}

// NewServer creates the HTTP API server
func NewServer(
	service *core.ScanService,
	sessions *session.Store,
	logger *zap.Logger,
	registry *prometheus.Registry,
	modelInfo ModelInfo,
	listenAddr string,
	shutdownTimeout time.Duration,
) *Server {
	return &Server{
		service:         service,
		sessions:        sessions,
		logger:          logger,
		registry:        registry,
		modelInfo:       modelInfo,
		listenAddr:      listenAddr,
		shutdownTimeout: shutdownTimeout,
	}
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scan", s.handleScan)
		r.Get("/sessions/{sessionID}", s.handleSession)
		r.Post("/feedback", s.handleFeedback)
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return err
	}

	s.logger.Info("HTTP API starting", zap.String("address", s.listenAddr))
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()
	return nil
}

// Stop gracefully shuts the server down
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
