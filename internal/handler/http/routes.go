package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/api/version", h.getAppVersion)

	// admin surface of the sync engine
	router.Group(func(r chi.Router) {
		r.Get("/api/sync/status", h.getSyncStatus)
		r.Get("/api/sync/conflicts", h.getConflicts)
		r.Get("/api/sync/failed", h.getFailedItems)
		r.Post("/api/sync/retry/{noteID}", h.resetRetry)
		r.Post("/api/sync/failed/reset", h.resetAllFailed)
		r.Post("/api/sync/sweep", h.triggerSweep)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
