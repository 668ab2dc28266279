package entities

import (
	"github.com/google/uuid"
)

type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Image       []byte    `gorm:"type:bytea" json:"-"` // opaque, never interpreted

	Timestamp
}

type MenuItemLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Action     string    `json:"action"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
