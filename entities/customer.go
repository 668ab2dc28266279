package entities

import (
	"github.com/google/uuid"
)

type Customer struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	Passcode    string    `json:"-"` // cleared on successful verification
	TableNumber int       `json:"table_number"`

	Timestamp
}
