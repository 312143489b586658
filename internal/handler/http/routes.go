package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		withGZip,
		middleware.Timeout(h.requestTimeout),
	)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/session", func(r chi.Router) {
			r.Post("/", h.login)
			r.Delete("/", h.logout)
		})

		r.Route("/foods", func(r chi.Router) {
			r.Get("/", h.listFoods)
			r.Get("/counts", h.countFoods)
			r.Get("/{id}", h.getFood)

			// mutations: the session is derived from Basic credentials
			r.Group(func(r chi.Router) {
				r.Use(h.withSession)
				r.Post("/", h.addFood)
				r.Delete("/{id}", h.deleteFood)
			})
		})
	})

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
