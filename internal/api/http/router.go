package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jontropati/storefront/internal/api/http/handlers"
	"github.com/jontropati/storefront/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Products *handlers.ProductsHandler
	Orders   *handlers.OrdersHandler
	Users    *handlers.UsersHandler
	Payments *handlers.PaymentsHandler
	Gate     *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Each route declares its gate stages
// in order; registration order keeps literal segments ahead of params.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	gate := cfg.Gate

	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/products", cfg.Products.List)
	app.Post("/products", gate.RequireAuth, gate.RequireAdmin, cfg.Products.Create)
	app.Get("/products/:id", cfg.Products.Get)
	app.Put("/products/:id", cfg.Products.UpdateQuantity)
	app.Delete("/products/:id", cfg.Products.Delete)

	app.Get("/orders", gate.RequireAuth, cfg.Orders.List)
	app.Get("/myorders", gate.RequireAuth, auth.RequireOwnerQuery("email"), cfg.Orders.ListOwn)
	app.Get("/orders/:id", gate.RequireAuth, cfg.Orders.Get)
	app.Post("/orders", cfg.Orders.Create)
	app.Put("/orders/:id", cfg.Orders.SetDeliveryStatus)
	app.Patch("/orders/:id", gate.RequireAuth, cfg.Orders.RecordPayment)
	app.Delete("/orders/:id", cfg.Orders.Delete)

	app.Get("/user", gate.RequireAuth, cfg.Users.List)
	app.Get("/admin/:email", cfg.Users.IsAdmin)
	app.Put("/user/admin/:email", gate.RequireAuth, gate.RequireAdmin, cfg.Users.SetRole)
	app.Get("/user/:email", gate.RequireAuth, cfg.Users.Get)
	app.Patch("/user/:email", gate.RequireAuth, auth.RequireOwnerParam("email"), cfg.Users.Update)
	app.Put("/user/:email", cfg.Users.Upsert)
	app.Get("/review", cfg.Users.Reviews)

	app.Post("/create-payment-intent", gate.RequireAuth, cfg.Payments.CreateIntent)
}
