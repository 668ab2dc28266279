package routes

import (
	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/internal/api/handlers"
	"github.com/Krithish69/Restaurant/internal/middleware"
	"github.com/Krithish69/Restaurant/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	CustomerHandler handlers.CustomerHandler
	MenuHandler     handlers.MenuHandler
	TableHandler    handlers.TableHandler
	OrderHandler    handlers.OrderHandler
	KitchenHandler  handlers.KitchenHandler
	StaffHandler    handlers.StaffHandler
	PaymentHandler  handlers.PaymentHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Customer()
	c.Menu()
	c.Order()
	c.Table()
	c.Kitchen()
	c.Staff()
	c.GuestRoute()
}

func (c *Config) Customer() {
	customer := c.App.Group("/api/v1/customers")
	{
		customer.Post("/passcode", c.CustomerHandler.RequestPasscode)
		customer.Post("/verify", c.CustomerHandler.VerifyPasscode)
		customer.Get("/me", c.Middleware.CustomerMiddleware(c.JWTService), c.CustomerHandler.Me)
		customer.Post("/logout", c.CustomerHandler.Logout)
	}
}

func (c *Config) Menu() {
	// public, read-only menu for the ordering UI
	c.App.Get("/api/v1/menu", c.MenuHandler.List)

	// admin catalog management
	admin := c.App.Group("/api/v1/admin/menu", c.Middleware.StaffMiddleware(c.JWTService, domain.RoleAdmin))
	{
		admin.Post("", c.MenuHandler.Upsert)
		admin.Get("/:id", c.MenuHandler.Get)
		admin.Delete("/:id", c.MenuHandler.Delete)
	}
}

func (c *Config) Order() {
	orders := c.App.Group("/api/v1/orders")
	{
		orders.Post("", c.Middleware.CustomerMiddleware(c.JWTService), c.OrderHandler.PlaceOrder)
		orders.Get("/table/:tableId", c.Middleware.StaffMiddleware(c.JWTService), c.OrderHandler.OrdersForTable)
	}

	payments := c.App.Group("/api/v1/payments")
	{
		payments.Post("/checkout", c.Middleware.CustomerMiddleware(c.JWTService), c.PaymentHandler.Checkout)
	}
}

func (c *Config) Table() {
	tables := c.App.Group("/api/v1/tables", c.Middleware.StaffMiddleware(c.JWTService))
	{
		tables.Get("", c.TableHandler.ListTables)
		tables.Put("/:tableId/occupy", c.TableHandler.Occupy)
		tables.Put("/:tableId/vacate", c.TableHandler.Vacate)
		tables.Get("/:tableId/qr", c.TableHandler.TableQR)
	}
}

func (c *Config) Kitchen() {
	kitchen := c.App.Group("/api/v1/kitchen", c.Middleware.StaffMiddleware(c.JWTService, domain.RoleAdmin, domain.RoleKitchen))
	{
		kitchen.Get("/orders", c.KitchenHandler.PendingOrders)
		kitchen.Get("/orders/completed", c.KitchenHandler.CompletedOrders)
		kitchen.Get("/orders/:orderId", c.KitchenHandler.OrderDetail)
		kitchen.Put("/orders/:orderId/start", c.KitchenHandler.StartOrder)
		kitchen.Put("/orders/:orderId/complete", c.KitchenHandler.CompleteOrder)
	}
}

func (c *Config) Staff() {
	staff := c.App.Group("/api/v1/staff")
	{
		staff.Post("/register", c.StaffHandler.Register)
		staff.Post("/login", c.StaffHandler.Login)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.Notification)
}
