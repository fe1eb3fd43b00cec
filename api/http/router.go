package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/usermanagement/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Creation and
// login stay anonymous; every other user route requires a bearer token.
func Register(app *fiber.App, users *handlers.UserHandler, auth *handlers.AuthHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	a := api.Group("/auth")
	a.Post("/login", auth.Login)

	u := api.Group("/user")
	u.Post("/", users.Create)
	u.Post("/bulk-create", users.BulkCreate)
	u.Get("/", authMW, users.List)
	u.Get("/:id", authMW, users.GetByID)
	u.Put("/:id", authMW, users.Update)
	u.Delete("/:id", authMW, users.Delete)
}
