package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Specialty is a medical specialty offered by the network. ImageURL is
// populated asynchronously by the external image-generation service.
type Specialty struct {
	ID       string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name     string  `json:"name" gorm:"uniqueIndex;not null"`
	ImageURL *string `json:"imageUrl"`
}

// BeforeCreate assigns a UUID before inserting.
func (s *Specialty) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
