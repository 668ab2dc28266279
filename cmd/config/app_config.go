package config

import (
	"os"
	"time"

	"github.com/Krithish69/Restaurant/internal/api/handlers"
	"github.com/Krithish69/Restaurant/internal/api/routes"
	"github.com/Krithish69/Restaurant/internal/middleware"
	"github.com/Krithish69/Restaurant/internal/utils"
	"github.com/Krithish69/Restaurant/internal/utils/mailing"
	"github.com/Krithish69/Restaurant/pkg/customer"
	"github.com/Krithish69/Restaurant/pkg/jwt"
	"github.com/Krithish69/Restaurant/pkg/kitchen"
	"github.com/Krithish69/Restaurant/pkg/menu"
	"github.com/Krithish69/Restaurant/pkg/order"
	"github.com/Krithish69/Restaurant/pkg/payment"
	"github.com/Krithish69/Restaurant/pkg/staff"
	"github.com/Krithish69/Restaurant/pkg/table"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	mailer := mailing.NewMailer()

	// Repository
	customerRepository := customer.NewCustomerRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	tableRepository := table.NewTableRepository(db)
	orderRepository := order.NewOrderRepository(db)
	kitchenRepository := kitchen.NewKitchenRepository(db)
	staffRepository := staff.NewStaffRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	customerService := customer.NewCustomerService(customerRepository, jwtService, mailer)
	menuService := menu.NewMenuService(menuRepository)
	tableService := table.NewTableService(tableRepository)
	orderService := order.NewOrderService(orderRepository, menuRepository, tableRepository)
	kitchenService := kitchen.NewKitchenService(kitchenRepository)
	staffService := staff.NewStaffService(staffRepository, jwtService)
	paymentService := payment.NewPaymentService(orderRepository, tableRepository)

	// Handler
	customerHandler := handlers.NewCustomerHandler(customerService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	tableHandler := handlers.NewTableHandler(tableService)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	kitchenHandler := handlers.NewKitchenHandler(kitchenService)
	staffHandler := handlers.NewStaffHandler(staffService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		CustomerHandler: customerHandler,
		MenuHandler:     menuHandler,
		TableHandler:    tableHandler,
		OrderHandler:    orderHandler,
		KitchenHandler:  kitchenHandler,
		StaffHandler:    staffHandler,
		PaymentHandler:  paymentHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
