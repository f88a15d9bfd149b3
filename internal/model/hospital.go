package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hospital is a unit of the municipal hospital directory. Globally visible,
// mutable only by admins.
type Hospital struct {
	ID      string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name    string  `json:"name" gorm:"not null"`
	Address string  `json:"address" gorm:"not null"`
	Phone   *string `json:"phone"`
}

// BeforeCreate assigns a UUID before inserting.
func (h *Hospital) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
