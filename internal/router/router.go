package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agora-dev/agora/internal/middleware/metrics"
	"github.com/agora-dev/agora/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler

	// Operational endpoints outside the API prefix
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Every API request gets an optional identity; bad tokens fall back
		// to anonymous here and only GET /me turns that into an error.
		r.Use(deps.AuthMiddleware.OptionalAuth())

		r.Get("/", h.Root)

		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Get("/me", h.Me)

		r.Post("/threads", h.CreateThread)
		r.Get("/threads", h.ListThreads)
		r.Get("/threads/{thread}", h.GetThread)

		r.Post("/threads/{thread}/replies", h.CreateReply)
		r.Get("/threads/{thread}/replies", h.ListReplies)

		r.Post("/upload-image", h.UploadImage)
	})

	return r
}
