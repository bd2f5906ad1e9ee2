// Package api implements the HTTP/WebSocket surface for cmd/netkitd: a
// gorilla/mux router for survey CRUD and heatmap/dead-zone/placement
// queries, plus a gorilla/websocket live push of measurement_added events
// to a connected planning UI, following the teacher's
// internal/adapters/web/server.go and .../websocket/ws_manager.go. The
// core packages underneath never import this package; it only ever calls
// into them.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/lamco-admin/netkit/internal/config"
	"github.com/lamco-admin/netkit/internal/storage"
)

// Server wires the survey/heatmap/planning core to an HTTP+WebSocket
// surface backed by a Store.
type Server struct {
	Addr    string
	Store   *storage.Store
	Cfg     *config.Config
	WS      *WSManager
	httpSrv *http.Server
}

// NewServer constructs a Server bound to addr, persisting through store
// and configured by cfg.
func NewServer(addr string, store *storage.Store, cfg *config.Config) *Server {
	return &Server{
		Addr:  addr,
		Store: store,
		Cfg:   cfg,
		WS:    NewWSManager(),
	}
}

// Router builds the gorilla/mux route table.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/surveys", s.handleCreateSurvey).Methods(http.MethodPost)
	r.HandleFunc("/surveys", s.handleListSurveys).Methods(http.MethodGet)
	r.HandleFunc("/surveys/{id}", s.handleGetSurvey).Methods(http.MethodGet)
	r.HandleFunc("/surveys/{id}/measurements", s.handleAddMeasurement).Methods(http.MethodPost)
	r.HandleFunc("/surveys/{id}/complete", s.handleCompleteSurvey).Methods(http.MethodPost)
	r.HandleFunc("/surveys/{id}/heatmap", s.handleGetHeatmap).Methods(http.MethodGet)
	r.HandleFunc("/surveys/{id}/deadzones", s.handleGetDeadZones).Methods(http.MethodGet)
	r.HandleFunc("/surveys/{id}/recommendation", s.handleGetRecommendation).Methods(http.MethodGet)
	r.HandleFunc("/surveys/{id}/report.pdf", s.handleDownloadReport).Methods(http.MethodGet)

	r.Handle("/ws", http.HandlerFunc(s.WS.HandleWebSocket))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:    s.Addr,
		Handler: otelhttp.NewHandler(s.Router(), "netkitd"),
	}

	go s.WS.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
