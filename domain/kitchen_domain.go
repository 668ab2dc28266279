package domain

import "errors"

var (
	MessageSuccessGetKitchenOrders = "kitchen orders retrieved successfully"
	MessageSuccessStartOrder       = "order status updated to In Progress"
	MessageSuccessCompleteOrder    = "order status updated to Completed"

	MessageFailedGetKitchenOrders = "failed to retrieve kitchen orders"
	MessageFailedStartOrder       = "failed to start order"
	MessageFailedCompleteOrder    = "failed to complete order"

	ErrOrderNotPending    = errors.New("order not found or already in progress")
	ErrOrderNotInProgress = errors.New("order not found or not in progress")
)

type (
	KitchenOrderLine struct {
		ItemName string `json:"item_name"`
		Quantity int    `json:"quantity"`
	}

	KitchenOrderResponse struct {
		OrderID     string             `json:"order_id"`
		BillNumber  string             `json:"bill_number"`
		TableNumber int                `json:"table_number"`
		TotalAmount float64            `json:"total_amount"`
		Status      string             `json:"status"`
		Items       []KitchenOrderLine `json:"items"`
	}
)
