// Package server exposes the task store over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/rs/cors"

	"github.com/gmolchanov/quadrant/internal/service"
)

const (
	apiTitle       = "quadrant"
	apiVersion     = "1.0.0"
	apiDescription = "To-do list API organized by the Eisenhower matrix"
)

type Server struct {
	tasks  service.TaskService
	stats  service.StatsService
	logger *log.Logger
}

func New(tasks service.TaskService, stats service.StatsService, logger *log.Logger) *Server {
	return &Server{tasks: tasks, stats: stats, logger: logger}
}

// Handler builds the full middleware chain: mux, request logging, CORS.
func (s *Server) Handler(corsOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleWelcome)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /tasks", s.handleListTasks)
	mux.HandleFunc("POST /tasks", s.handleCreateTask)
	mux.HandleFunc("GET /tasks/grouped", s.handleListGrouped)
	mux.HandleFunc("GET /tasks/quadrant/{quadrant}", s.handleListByQuadrant)
	mux.HandleFunc("GET /tasks/status/{status}", s.handleListByStatus)
	mux.HandleFunc("GET /tasks/search", s.handleSearchTasks)
	mux.HandleFunc("GET /tasks/{id}", s.handleGetTask)
	mux.HandleFunc("PATCH /tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("DELETE /tasks/{id}", s.handleDeleteTask)
	mux.HandleFunc("POST /tasks/{id}/done", s.handleMarkDone)

	mux.HandleFunc("GET /stats/tasks", s.handleTaskStats)
	mux.HandleFunc("GET /stats/timing", s.handleTimingStats)

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(s.logRequests(mux))
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, corsOrigins []string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler(corsOrigins)}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	s.logger.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"title":       apiTitle,
		"version":     apiVersion,
		"description": apiDescription,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
