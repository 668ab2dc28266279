package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TableID     uuid.UUID  `json:"table_id"`
	TableNumber int        `json:"table_number"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	TotalAmount float64    `json:"total_amount"`
	BillNumber  string     `json:"bill_number"`
	Status      string     `json:"status"` // "Pending", "In Progress", "Completed"
	SettledAt   *time.Time `json:"settled_at,omitempty"`

	Table    *Table      `gorm:"foreignKey:TableID" json:"-"`
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Timestamp
}

type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID `gorm:"uniqueIndex:idx_order_line" json:"order_id"`
	MenuItemID uuid.UUID `gorm:"uniqueIndex:idx_order_line" json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Timestamp
}
