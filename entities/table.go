package entities

import (
	"github.com/google/uuid"
)

type Table struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TableNumber int       `gorm:"uniqueIndex" json:"table_number"`
	Status      string    `json:"status"` // "Vacant", "Occupied"

	Timestamp
}
