package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HealthRecord is a personal health-log entry (a vaccine, an exam result).
// Same ownership rule as Appointment: every query carries a user_id predicate.
type HealthRecord struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate assigns a UUID before inserting.
func (r *HealthRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
