package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouteConfig carries the pieces SetupRoutes needs besides the handler
type RouteConfig struct {
	JWTSecret   []byte
	RateLimiter *UserRateLimiter
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler, cfg RouteConfig) {
	// Health check
	app.Get("/health", handler.HealthCheck)

	api := app.Group("/api/health", RequireAuth(cfg.JWTSecret))
	{
		writes := func(c *fiber.Ctx) error { return c.Next() }
		if cfg.RateLimiter != nil {
			writes = cfg.RateLimiter.Middleware()
		}

		api.Get("/logs", handler.ListLogs)
		api.Post("/logs", writes, handler.CreateLog)
		api.Get("/logs/:id", handler.GetLog)
		api.Put("/logs/:id", writes, handler.UpdateLog)
		api.Delete("/logs/:id", writes, handler.DeleteLog)

		api.Get("/vitals", handler.GetVitals)
		api.Get("/risk-analysis", handler.GetRiskAnalysis)
		api.Get("/trends", handler.GetTrends)
		api.Get("/dashboard", handler.GetDashboard)
	}
}
