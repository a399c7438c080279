package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Promotion is read-only for this service; rows are managed elsewhere.
type Promotion struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PropertyID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"property_id"`
	Title         string          `gorm:"size:255;not null" json:"title"`
	Description   string          `gorm:"type:text" json:"description"`
	DiscountType  string          `gorm:"size:20;not null" json:"discount_type"`
	DiscountValue decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"discount_value"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`
	IsClaimable   bool            `gorm:"not null;default:true" json:"is_claimable"`
	CreatedAt     time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Promotion) TableName() string {
	return "promotions"
}
