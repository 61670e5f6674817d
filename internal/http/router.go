package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authHandler "github.com/inflybi/warehouse/internal/http/auth"
	reportHandler "github.com/inflybi/warehouse/internal/http/report"
)

func New(
	authV1 *authHandler.Handler,
	reportsV1 *reportHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The dashboards are served from another origin; mirror the permissive
	// CORS policy they already rely on.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(authV1.RequireToken)
			reportsV1.Routes(r)
		})
	})

	return router
}
