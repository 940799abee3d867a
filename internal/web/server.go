// Package web serves the operator endpoints of a headless run: prometheus
// metrics, a health check and the poller job table.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/user/homeportal/internal/poller"
	"github.com/user/homeportal/internal/util"
)

// JobLister reports scheduler state.
type JobLister interface {
	JobStatuses() []poller.JobStatus
}

// Server is the operator HTTP server.
type Server struct {
	addr string
	srv  *http.Server
}

// NewServer creates a server on addr exposing reg and jobs.
func NewServer(addr string, reg *prometheus.Registry, jobs JobLister) *Server {
	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:         addr,
			Handler:      Handler(reg, jobs),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handler builds the route table.
func Handler(reg *prometheus.Registry, jobs JobLister) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(jobs.JobStatuses()); err != nil {
			util.Warn("Encode job table: %v", err)
		}
	})
	return mux
}

// Start serves until Stop is called. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	util.Info("Metrics server listening on %s", s.addr)

	if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server, waiting up to timeout for open requests.
func (s *Server) Stop(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return s.srv.Shutdown(ctx)
}
