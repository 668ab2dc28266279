package handlers

import (
	"errors"

	"github.com/Krithish69/Restaurant/domain"
	"github.com/Krithish69/Restaurant/internal/api/presenters"
	"github.com/Krithish69/Restaurant/pkg/table"
	"github.com/gofiber/fiber/v2"
)

type (
	TableHandler interface {
		ListTables(c *fiber.Ctx) error
		Occupy(c *fiber.Ctx) error
		Vacate(c *fiber.Ctx) error
		TableQR(c *fiber.Ctx) error
	}

	tableHandler struct {
		tableService table.TableService
	}
)

func NewTableHandler(tableService table.TableService) TableHandler {
	return &tableHandler{tableService: tableService}
}

func (h *tableHandler) ListTables(c *fiber.Ctx) error {
	tables, err := h.tableService.ListTables(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetTables, err)
	}

	return presenters.SuccessResponse(c, tables, fiber.StatusOK, domain.MessageSuccessGetTables)
}

func (h *tableHandler) Occupy(c *fiber.Ctx) error {
	tableID := c.Params("tableId")

	if err := h.tableService.Occupy(c.Context(), tableID); err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOccupyTable, err)
		case errors.Is(err, domain.ErrTableNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedOccupyTable, err)
		case errors.Is(err, domain.ErrTableOccupied):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedOccupyTable, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedOccupyTable, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessOccupyTable)
}

func (h *tableHandler) Vacate(c *fiber.Ctx) error {
	tableID := c.Params("tableId")

	if err := h.tableService.Vacate(c.Context(), tableID); err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVacateTable, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedVacateTable, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessVacateTable)
}

func (h *tableHandler) TableQR(c *fiber.Ctx) error {
	tableID := c.Params("tableId")

	png, err := h.tableService.TableQR(c.Context(), tableID)
	if err != nil {
		if errors.Is(err, domain.ErrTableNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedTableQR, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedTableQR, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
