package entity

import "time"

// ParticipantView is a participant enriched with profile display fields.
type ParticipantView struct {
	UserID   string   `json:"user_id"`
	FullName string   `json:"full_name"`
	Email    string   `json:"email"`
	UserType UserType `json:"user_type"`
}

// MessageView is the last-message preview with sender display fields.
type MessageView struct {
	ID         string    `json:"id"`
	Body       string    `json:"body"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// PropertySummary is the property header shown on a conversation card.
type PropertySummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// SupportTicketSummary is attached to support-type conversations only.
type SupportTicketSummary struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

// ConversationView is a conversation enriched for the CRM detail view.
// Enrichment fields are nil/empty when their lookup failed; a failed
// enrichment never drops the conversation from the list.
type ConversationView struct {
	Conversation

	Participants  []ParticipantView     `json:"participants"`
	Property      *PropertySummary      `json:"property"`
	LastMessage   *MessageView          `json:"last_message"`
	UnreadCount   int64                 `json:"unread_count"`
	SupportTicket *SupportTicketSummary `json:"support_ticket,omitempty"`
}
