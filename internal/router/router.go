package router

import (
	"net/http"

	"equisports-backend/internal/handlers"
	customMiddleware "equisports-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Users     *handlers.UserHandler
	Equipment *handlers.EquipmentHandler
	Health    *handlers.HealthHandler
}

func New(h Handlers, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.CorrelationID)
	r.Use(customMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", customMiddleware.HeaderCorrelationID, customMiddleware.HeaderRequestID},
		ExposedHeaders:   []string{customMiddleware.HeaderCorrelationID},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", h.Health.Root)
	r.Get("/health", h.Health.Health)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Users.Create)
		r.Get("/", h.Users.List)
		r.Patch("/", h.Users.UpdateLastSignIn)
	})

	r.Route("/equipment", func(r chi.Router) {
		r.Post("/", h.Equipment.Create)
		r.Get("/", h.Equipment.List)
		r.Get("/{id}", h.Equipment.Get)
		r.Put("/{id}", h.Equipment.Update)
	})

	return r
}
