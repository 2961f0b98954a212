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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// settings routes, authorized
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/settings", h.getSettings)
		r.Put("/api/settings/{path}", h.putSetting)
		r.Post("/api/server/select", h.selectServer)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
