package entity

import "time"

// Property is a rental property. Only the fields the claim flow and the
// CRM conversation view need are modeled here.
type Property struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// Company groups properties under one operator account.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SupportTicket is the ticket attached to a support-type conversation.
type SupportTicket struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Subject        string    `json:"subject"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	CreatedAt      time.Time `json:"created_at"`
}
