// Package server exposes the planner over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/misterclayt0n/treino/internal/logger"
	"github.com/misterclayt0n/treino/internal/planner"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	planner     *planner.Planner
	log         *logger.Logger
	weeks       int
	daysPerWeek int
	router      chi.Router
}

// New creates a Server with all routes configured. weeks and daysPerWeek
// are used for program requests that leave them out.
func New(p *planner.Planner, weeks, daysPerWeek int, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	s := &Server{
		planner:     p,
		log:         log,
		weeks:       weeks,
		daysPerWeek: daysPerWeek,
		router:      chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/exercises", s.handleListExercises)
		r.Post("/sessions", s.handleBuildSession)
		r.Post("/sessions/ui", s.handleBuildSessionUI)
		r.Post("/programs", s.handleBuildProgram)
		r.Post("/programs/ui", s.handleBuildProgramUI)
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	httpSrv := &http.Server{Handler: s, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.Serve(listener)
	}()
	s.log.Info("server starting", "addr", listener.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
