package entity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerStatus is the CRM lifecycle state of a customer record.
type CustomerStatus string

const (
	CustomerStatusLead      CustomerStatus = "lead"
	CustomerStatusActive    CustomerStatus = "active"
	CustomerStatusPastGuest CustomerStatus = "past_guest"
	CustomerStatusInactive  CustomerStatus = "inactive"
)

// Contact carries the display/contact fields captured from a guest.
type Contact struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// Customer is a CRM record scoped to a single property. A person who
// inquires about two properties gets two independent rows with independently
// evolving status and tags. At most one row exists per (email, property).
type Customer struct {
	ID string `json:"id"`
	// UserID is nil while the guest has not completed account setup.
	UserID     *string `json:"user_id"`
	PropertyID string  `json:"property_id"`
	// CompanyID is denormalized from the property for convenience.
	CompanyID string         `json:"company_id"`
	Email     string         `json:"email"`
	FullName  string         `json:"full_name"`
	Phone     string         `json:"phone"`
	Status    CustomerStatus `json:"status"`
	Tags      []string       `json:"tags"`
	Source    string         `json:"source"`

	TotalBookings    int             `json:"total_bookings"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	FirstBookingDate *time.Time      `json:"first_booking_date"`
	LastBookingDate  *time.Time      `json:"last_booking_date"`
	LastContactDate  *time.Time      `json:"last_contact_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewLead validates and builds a fresh lead-status customer record.
func NewLead(userID, propertyID, companyID string, contact Contact, tag string) (*Customer, error) {
	if propertyID == "" {
		return nil, errors.New("customer property id is required")
	}
	if companyID == "" {
		return nil, errors.New("customer company id is required")
	}
	if contact.Email == "" {
		return nil, errors.New("customer email is required")
	}

	now := time.Now()

	tags := []string{}
	if tag != "" {
		tags = append(tags, tag)
	}

	var uid *string
	if userID != "" {
		uid = &userID
	}

	return &Customer{
		UserID:          uid,
		PropertyID:      propertyID,
		CompanyID:       companyID,
		Email:           NormalizeEmail(contact.Email),
		FullName:        contact.FullName,
		Phone:           contact.Phone,
		Status:          CustomerStatusLead,
		Tags:            tags,
		Source:          "chat",
		TotalSpent:      decimal.Zero,
		LastContactDate: &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// AddTag merges a tag into the set. Returns false when it was already present.
func (c *Customer) AddTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return false
		}
	}
	c.Tags = append(c.Tags, tag)
	return true
}

// TouchContact refreshes the last-contact timestamp.
func (c *Customer) TouchContact(at time.Time) {
	c.LastContactDate = &at
	c.UpdatedAt = at
}
