package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"superheroes/middleware"
)

type RouterConfig struct {
	// AllowedOrigins lists the origins allowed by CORS. Empty allows any.
	AllowedOrigins []string
}

// NewRouter wires every endpoint onto a chi router.
func NewRouter(store Store, logger *slog.Logger, cfg RouterConfig) http.Handler {
	heroHandler := NewHeroHandler(store, logger)
	powerHandler := NewPowerHandler(store, logger)
	heroPowerHandler := NewHeroPowerHandler(store, logger)
	healthHandler := NewHealthHandler(store)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	router.Get("/", Index)
	router.Get("/healthz", healthHandler.Check)

	// Reads
	router.Get("/heroes", heroHandler.List)
	router.Get("/heroes/{id:[0-9]+}", heroHandler.Get)
	router.Get("/powers", powerHandler.List)
	router.Get("/powers/{id:[0-9]+}", powerHandler.Get)
	router.Get("/hero_powers", heroPowerHandler.List)

	// Writes take JSON bodies
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireJSON)
		r.Patch("/powers/{id:[0-9]+}", powerHandler.Update)
		r.Post("/hero_powers", heroPowerHandler.Create)
	})

	return router
}
