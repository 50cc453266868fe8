package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/bearylogical/folio/internal/app"
	"github.com/bearylogical/folio/internal/cache"
	"github.com/bearylogical/folio/internal/entity"
	"github.com/bearylogical/folio/internal/render"
)

// Server serves the site over HTTP
type Server struct {
	mux      *http.ServeMux
	server   *http.Server
	logger   *slog.Logger
	site     *entity.Config
	cache    cache.Cache
	source   ContentSource
	renderer *render.Renderer
}

// NewServer creates a new site server listening on the configured port
func NewServer(site *entity.Config, c cache.Cache, source ContentSource, renderer *render.Renderer) *Server {
	server := &Server{
		mux:      http.NewServeMux(),
		logger:   app.Logger(),
		site:     site,
		cache:    c,
		source:   source,
		renderer: renderer,
		server: &http.Server{
			Addr:              ":" + site.Server.Port,
			ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}

	server.registerHandlers()

	return server
}

func (s *Server) registerHandlers() {
	NewSiteHandler(s.mux, s.site, s.cache, s.source, s.renderer)
}

// Handler returns the router wrapped with middleware
func (s *Server) Handler() http.Handler {
	return Logger(s.mux)
}

// Run starts the server and blocks until the context is canceled
func (s *Server) Run(ctx context.Context) error {
	s.server.Handler = s.Handler()
	s.server.BaseContext = func(_ net.Listener) context.Context { return ctx }

	s.server.RegisterOnShutdown(func() {
		s.logger.Info("Server is shutting down...")
	})

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server", "port", s.site.Server.Port)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("Server exited gracefully")

	return nil
}
