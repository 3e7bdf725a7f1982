package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// service info
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/version/build", h.getBuildInfo)
		r.Get("/api/missing", h.missingSettings)
	})

	// settings
	router.Group(func(r chi.Router) {
		r.Get("/api/settings", h.listSettings)
		r.Get("/api/settings/{name}", h.getSetting)
		r.Put("/api/settings/{name}", h.setSetting)
		r.Post("/api/settings/{name}/move", h.moveItem)

		r.Get("/api/settings/{name}/items/{idx}", h.getItem)
		r.Put("/api/settings/{name}/items/{idx}", h.setItem)
		r.Delete("/api/settings/{name}/items/{idx}", h.removeItem)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
