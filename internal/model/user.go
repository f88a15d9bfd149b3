package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of access levels a user can hold.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"
	// RoleAdmin grants access to directory management endpoints. Promotion
	// happens out-of-band via a database update, there is no API path for it.
	RoleAdmin Role = "admin"
)

// User represents a registered citizen.
type User struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone        *string   `json:"phone"`
	PasswordHash string    `json:"-" gorm:"not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:50;not null;default:'user'"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BeforeCreate assigns a UUID and the default role before inserting.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// Profile is the identity payload returned by auth endpoints. The
// presentation layer relies on Role to decide whether to render admin UI.
type Profile struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
	Role  Role    `json:"role"`
}

// ToProfile strips the user down to its public identity fields.
func (u *User) ToProfile() Profile {
	return Profile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}
