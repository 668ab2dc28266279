package handlers

import (
	"errors"
	"strconv"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/internal/api/presenters"
	"github.com/Krithish69/Restaurant/pkg/menu"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		List(c *fiber.Ctx) error
		Get(c *fiber.Ctx) error
		Upsert(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) List(c *fiber.Ctx) error {
	items, err := h.menuService.List(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) Get(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.menuService.Get(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMenu, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

// Upsert accepts the multipart admin form. A row matched by name is
// updated (200), otherwise one is created (201).
func (h *menuHandler) Upsert(c *fiber.Ctx) error {
	req := new(domain.UpsertMenuItemRequest)

	req.Name = c.FormValue("name")
	req.Description = c.FormValue("description")
	req.Category = c.FormValue("category")

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price <= 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertMenuItem, domain.ErrInvalidPrice)
	}
	req.Price = price

	// image is optional; absence keeps any stored bytes on update
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertMenuItem, err)
	}

	item, created, err := h.menuService.UpsertByName(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPrice) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertMenuItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpsertMenuItem, err)
	}

	if created {
		return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.MessageSuccessAddMenuItem)
	}
	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessUpdateMenuItem)
}

func (h *menuHandler) Delete(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.menuService.Delete(c.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMenuItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteMenuItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMenuItem)
}
