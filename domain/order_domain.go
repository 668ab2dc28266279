package domain

import "errors"

var (
	MessageSuccessPlaceOrder = "order placed successfully"
	MessageSuccessGetOrders  = "orders retrieved successfully"

	MessageFailedPlaceOrder = "failed to place order"
	MessageFailedGetOrders  = "failed to retrieve orders"

	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyOrder    = errors.New("order has no line items")
)

type (
	OrderLineRequest struct {
		MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
		Quantity   int    `json:"quantity" validate:"required,min=1"`
	}

	PlaceOrderRequest struct {
		TableNumber int                `json:"table_number" validate:"required,min=1"`
		Items       []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	}

	PlaceOrderResponse struct {
		BillNumber  string  `json:"bill_number"`
		TotalAmount float64 `json:"total_amount"`
	}

	OrderLineResponse struct {
		ItemName  string  `json:"item_name"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
	}

	TableOrdersResponse struct {
		Orders      []OrderLineResponse `json:"orders"`
		TotalAmount float64             `json:"total_amount"`
	}
)
