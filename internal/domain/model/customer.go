package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Customer is the persistence model for property-scoped CRM records. The
// unique index on (email, property_id) is what the lead registrar's
// catch-duplicate-refetch branch relies on.
type Customer struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     *uuid.UUID     `gorm:"type:uuid;index" json:"user_id"`
	PropertyID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_customers_email_property" json:"property_id"`
	CompanyID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"company_id"`
	Email      string         `gorm:"size:255;not null;uniqueIndex:idx_customers_email_property" json:"email"`
	FullName   string         `gorm:"size:255" json:"full_name"`
	Phone      string         `gorm:"size:50" json:"phone"`
	Status     string         `gorm:"size:20;not null;default:'lead'" json:"status"`
	Tags       datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Source     string         `gorm:"size:50" json:"source"`

	TotalBookings    int             `gorm:"not null;default:0" json:"total_bookings"`
	TotalSpent       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total_spent"`
	FirstBookingDate *time.Time      `json:"first_booking_date"`
	LastBookingDate  *time.Time      `json:"last_booking_date"`
	LastContactDate  *time.Time      `json:"last_contact_date"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Customer) TableName() string {
	return "customers"
}
