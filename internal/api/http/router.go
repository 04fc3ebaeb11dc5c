package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bruinrent/internal/api/http/handlers"
	"github.com/spec-kit/bruinrent/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Listings       *handlers.ListingsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Check)
	api.Get("/health/ready", cfg.Health.Ready)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	listings := api.Group("/listings", cfg.AuthMiddleware.Handle)
	// my-listings must be registered before :id.
	listings.Get("/my-listings", cfg.Listings.MyListings)
	listings.Get("/", cfg.Listings.List)
	listings.Post("/", cfg.Listings.Create)
	listings.Get("/:id", cfg.Listings.Get)
	listings.Put("/:id", cfg.Listings.Update)
	listings.Delete("/:id", cfg.Listings.Delete)
}
