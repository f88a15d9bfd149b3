package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// News is a municipal health news item. Globally visible, created by admins.
type News struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Summary     string    `json:"summary" gorm:"not null"`
	Content     string    `json:"content" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	ImageURL    *string   `json:"imageUrl"`
	PublishedAt time.Time `json:"publishedAt" gorm:"not null;autoCreateTime"`
}

// TableName keeps the singular table name used by the schema.
func (News) TableName() string { return "news" }

// BeforeCreate assigns a UUID before inserting.
func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
