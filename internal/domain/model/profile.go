package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the persistence model for platform users. The primary key is
// the auth account ID, never generated locally.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	Phone     string    `gorm:"size:50" json:"phone"`
	UserType  string    `gorm:"size:20;not null;default:'guest'" json:"user_type"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}
