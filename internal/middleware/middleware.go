package middleware

import (
	"strings"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/internal/api/presenters"
	"github.com/Krithish69/Restaurant/internal/utils"
	"github.com/Krithish69/Restaurant/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		CustomerMiddleware(jwtService jwt.JWTService) fiber.Handler
		StaffMiddleware(jwtService jwt.JWTService, roles ...string) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	origins := utils.GetConfig("APP_URL")
	if origins == "" {
		origins = "http://localhost:5173"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	})
}

// CustomerMiddleware authenticates the session cookie issued at passcode
// verification. A missing cookie is 401, a bad signature or expired token
// is 403.
func (m *middleware) CustomerMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(domain.SessionCookie)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		customerID, tableNumber, err := jwtService.GetCustomerByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("customer_id", customerID)
		c.Locals("table_number", tableNumber)
		return c.Next()
	}
}

// StaffMiddleware authenticates the bearer token issued at staff login and,
// when roles are given, requires one of them.
func (m *middleware) StaffMiddleware(jwtService jwt.JWTService, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		staffID, role, err := jwtService.GetStaffByToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedTokenInvalid, err)
		}

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedProcessRequest, domain.ErrStaffNotAllowed)
			}
		}

		c.Locals("staff_id", staffID)
		c.Locals("role", role)
		return c.Next()
	}
}
