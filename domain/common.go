package domain

import (
	"errors"
	"fmt"
)

const (
	RoleAdmin   = "admin"
	RoleKitchen = "kitchen"

	OrderPending    = "Pending"
	OrderInProgress = "In Progress"
	OrderCompleted  = "Completed"

	TableVacant   = "Vacant"
	TableOccupied = "Occupied"

	BillPrefix     = "BILL-"
	CurrencyPrefix = "₹"

	SessionCookie = "auth_token"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
)

// FormatPrice renders a stored numeric amount for display. Prices are kept
// numeric in the catalog and only prefixed at the response edge.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("%s%.2f", CurrencyPrefix, amount)
}
