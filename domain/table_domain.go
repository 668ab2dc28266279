package domain

import "errors"

var (
	MessageSuccessGetTables   = "tables retrieved successfully"
	MessageSuccessOccupyTable = "table status updated to Occupied"
	MessageSuccessVacateTable = "table status updated to Vacant"

	MessageFailedGetTables   = "failed to retrieve tables"
	MessageFailedOccupyTable = "failed to occupy table"
	MessageFailedVacateTable = "failed to vacate table"
	MessageFailedTableQR     = "failed to render table QR code"

	ErrTableNotFound = errors.New("table not found")
	ErrTableOccupied = errors.New("table already occupied")
)

type TableResponse struct {
	ID                string `json:"id"`
	TableNumber       int    `json:"table_number"`
	Status            string `json:"status"`
	TotalItemsOrdered int64  `json:"total_items_ordered"`
}
