package http

import (
	"net/http"

	"github.com/MKhiriev/go-msg-sync/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(middleware.Compress(5, "application/json"))

		r.Get("/api/version", h.version)
		r.Get("/api/sync/status", h.syncStatus)
		r.Get("/api/sync/criteria", h.syncCriteria)
		r.Post("/api/sync/slow/restart", h.restartSlowSync)
		r.Post("/api/one-on-one/resolve", h.resolveOneOnOne)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
