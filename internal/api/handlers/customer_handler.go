package handlers

import (
	"errors"
	"time"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/internal/api/presenters"
	"github.com/Krithish69/Restaurant/internal/utils"
	"github.com/Krithish69/Restaurant/pkg/customer"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CustomerHandler interface {
		RequestPasscode(c *fiber.Ctx) error
		VerifyPasscode(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	customerHandler struct {
		customerService customer.CustomerService
		validator       *validator.Validate
	}
)

func NewCustomerHandler(customerService customer.CustomerService, validator *validator.Validate) CustomerHandler {
	return &customerHandler{
		customerService: customerService,
		validator:       validator,
	}
}

func (h *customerHandler) RequestPasscode(c *fiber.Ctx) error {
	req := new(domain.RequestPasscodeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendPasscode, err)
	}

	if err := h.customerService.RequestPasscode(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSendPasscode, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendPasscode)
}

func (h *customerHandler) VerifyPasscode(c *fiber.Ctx) error {
	req := new(domain.VerifyPasscodeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyPasscode, err)
	}

	res, err := h.customerService.VerifyPasscode(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPasscode) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedVerifyPasscode, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedVerifyPasscode, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookie,
		Value:    res.Token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   utils.GetConfig("IsProd") == "true",
		SameSite: "Lax",
	})

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessVerifyPasscode)
}

func (h *customerHandler) Me(c *fiber.Ctx) error {
	customerID := c.Locals("customer_id").(string)

	res, err := h.customerService.Me(c.Context(), customerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCustomer, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCustomer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCustomer)
}

func (h *customerHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}
