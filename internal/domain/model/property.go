package model

import (
	"time"

	"github.com/google/uuid"
)

// Property is a rental property row; read-only for this service.
type Property struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Location  string    `gorm:"size:255" json:"location"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Property) TableName() string {
	return "properties"
}

// Company groups properties under one operator account.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// SupportTicket is attached to support-type conversations.
type SupportTicket struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"conversation_id"`
	Subject        string    `gorm:"size:255;not null" json:"subject"`
	Status         string    `gorm:"size:20;not null;default:'open'" json:"status"`
	Priority       string    `gorm:"size:20;not null;default:'normal'" json:"priority"`
	CreatedAt      time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (SupportTicket) TableName() string {
	return "support_tickets"
}
