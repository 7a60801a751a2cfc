package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/w-h-a/textproc"
	"github.com/w-h-a/textproc/server"
)

type httpServer struct {
	options server.Options
	server  *http.Server
}

func (s *httpServer) Run() error {
	return s.server.ListenAndServe()
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func newRouter(h *handler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", h.Index).Methods(http.MethodGet)
	router.HandleFunc("/process", h.Process).Methods(http.MethodPost)
	router.HandleFunc("/history", h.History).Methods(http.MethodGet)
	router.HandleFunc("/history/{id}", h.Lookup).Methods(http.MethodGet)
	router.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
	router.HandleFunc("/recent-activity", h.RecentActivity).Methods(http.MethodGet)
	router.HandleFunc("/recent-activity/{hours}", h.RecentActivity).Methods(http.MethodGet)
	router.HandleFunc("/sentiment-distribution", h.SentimentDistribution).Methods(http.MethodGet)
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	return router
}

func NewServer(app *textproc.App, opts ...server.Option) server.Server {
	options := server.NewOptions(opts...)

	var root http.Handler = newRouter(&handler{app: app})

	if ms, ok := MiddlewareFrom(options.Context); ok {
		for i := len(ms) - 1; i >= 0; i-- {
			root = ms[i](root)
		}
	}

	s := &httpServer{
		options: options,
		server: &http.Server{
			Addr:              options.Address,
			Handler:           root,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	return s
}
