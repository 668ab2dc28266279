package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetMenu        = "menu retrieved successfully"
	MessageSuccessAddMenuItem    = "menu item added successfully"
	MessageSuccessUpdateMenuItem = "menu item updated successfully"
	MessageSuccessDeleteMenuItem = "menu item deleted successfully"

	MessageFailedGetMenu        = "failed to retrieve menu"
	MessageFailedUpsertMenuItem = "failed to add or update menu item"
	MessageFailedDeleteMenuItem = "failed to delete menu item"

	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidPrice     = errors.New("price must be a positive number")
)

type (
	UpsertMenuItemRequest struct {
		Name        string                `json:"name" form:"name" validate:"required"`
		Description string                `json:"description" form:"description" validate:"required"`
		Category    string                `json:"category" form:"category" validate:"required"`
		Price       float64               `json:"price" form:"price" validate:"required,gt=0"`
		Image       *multipart.FileHeader `json:"-" form:"image"`
	}

	MenuItemResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Category    string    `json:"category"`
		Price       string    `json:"price"`
		Image       string    `json:"image,omitempty"` // jpeg data URL
		CreatedAt   time.Time `json:"created_at"`
	}
)
