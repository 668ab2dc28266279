package domain

import "errors"

var (
	MessageSuccessCheckout     = "payment transaction created successfully"
	MessageSuccessNotification = "payment notification processed"

	MessageFailedCheckout     = "failed to create payment transaction"
	MessageFailedNotification = "failed to process payment notification"

	ErrOrderAlreadySettled = errors.New("order already settled")
)

type (
	CheckoutRequest struct {
		OrderID string `json:"order_id" validate:"required,uuid"`
	}

	CheckoutResponse struct {
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	// PaymentNotification is the subset of the midtrans HTTP notification
	// the settlement flow cares about.
	PaymentNotification struct {
		OrderID           string `json:"order_id"` // carries the bill number
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
