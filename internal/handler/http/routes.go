package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// streaming route, lives as long as the search does
	router.Get("/search", h.search)

	router.Route("/api", func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Get("/version", h.getServerVersion)
		r.Get("/health", h.getHealth)
		r.Get("/agents", h.getAgents)
		r.Delete("/agents/context", h.clearAgentsContext)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
