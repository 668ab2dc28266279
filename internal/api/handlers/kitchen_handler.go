package handlers

import (
	"errors"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/internal/api/presenters"
	"github.com/Krithish69/Restaurant/pkg/kitchen"
	"github.com/gofiber/fiber/v2"
)

type (
	KitchenHandler interface {
		PendingOrders(c *fiber.Ctx) error
		CompletedOrders(c *fiber.Ctx) error
		OrderDetail(c *fiber.Ctx) error
		StartOrder(c *fiber.Ctx) error
		CompleteOrder(c *fiber.Ctx) error
	}

	kitchenHandler struct {
		kitchenService kitchen.KitchenService
	}
)

func NewKitchenHandler(kitchenService kitchen.KitchenService) KitchenHandler {
	return &kitchenHandler{kitchenService: kitchenService}
}

func (h *kitchenHandler) listByStatus(c *fiber.Ctx, status string) error {
	orders, err := h.kitchenService.ListByStatus(c.Context(), status)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetKitchenOrders, err)
	}

	return presenters.SuccessResponse(c, orders, fiber.StatusOK, domain.MessageSuccessGetKitchenOrders)
}

func (h *kitchenHandler) PendingOrders(c *fiber.Ctx) error {
	return h.listByStatus(c, domain.OrderPending)
}

func (h *kitchenHandler) CompletedOrders(c *fiber.Ctx) error {
	return h.listByStatus(c, domain.OrderCompleted)
}

func (h *kitchenHandler) OrderDetail(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	res, err := h.kitchenService.GetOrder(c.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetKitchenOrders, err)
		case errors.Is(err, domain.ErrOrderNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetKitchenOrders, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetKitchenOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetKitchenOrders)
}

// StartOrder transitions Pending -> In Progress; the guard failing is a
// conflict, not a server fault.
func (h *kitchenHandler) StartOrder(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	if err := h.kitchenService.Start(c.Context(), orderID); err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartOrder, err)
		case errors.Is(err, domain.ErrOrderNotPending):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedStartOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStartOrder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessStartOrder)
}

func (h *kitchenHandler) CompleteOrder(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	if err := h.kitchenService.Complete(c.Context(), orderID); err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteOrder, err)
		case errors.Is(err, domain.ErrOrderNotInProgress):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCompleteOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCompleteOrder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteOrder)
}
