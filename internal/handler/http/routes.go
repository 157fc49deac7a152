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
		r.Get("/health", h.health)
		r.Get("/api/version/", h.getAppVersion)
		r.Post("/api/auth/authenticate", h.authenticate)
	})

	// routes that require a valid application token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/user/", h.getUser)
		r.Get("/api/users", h.listUsers)
		r.Delete("/api/auth/revoke", h.revoke)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
