package entity

import (
	"errors"
	"time"
)

// ConversationType tags the purpose of a conversation thread.
type ConversationType string

const (
	ConversationTypeGuestInquiry ConversationType = "guest_inquiry"
	ConversationTypeSupport      ConversationType = "support"
)

// Conversation is a chat thread. PropertyID is nil only for conversations
// that do not belong to a property (support threads between staff, etc.).
type Conversation struct {
	ID            string           `json:"id"`
	PropertyID    *string          `json:"property_id"`
	Type          ConversationType `json:"type"`
	Archived      bool             `json:"archived"`
	LastMessageAt *time.Time       `json:"last_message_at"`
	CreatedAt     time.Time        `json:"created_at"`
}

// NewConversation validates and builds a property-scoped conversation.
func NewConversation(propertyID string, convType ConversationType) (*Conversation, error) {
	if propertyID == "" {
		return nil, errors.New("conversation property id is required")
	}
	if convType == "" {
		return nil, errors.New("conversation type is required")
	}

	return &Conversation{
		PropertyID: &propertyID,
		Type:       convType,
		CreatedAt:  time.Now(),
	}, nil
}

// Participant links a profile to a conversation. LastReadAt is the read
// watermark used for unread counts; nil means nothing was read yet.
type Participant struct {
	ConversationID string     `json:"conversation_id"`
	UserID         string     `json:"user_id"`
	LastReadAt     *time.Time `json:"last_read_at"`
	JoinedAt       time.Time  `json:"joined_at"`
}

// Message is a single chat message. Deleted messages stay in the store but
// are excluded from previews and unread counts.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Body           string    `json:"body"`
	Deleted        bool      `json:"deleted"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewMessage validates and builds a message.
func NewMessage(conversationID, senderID, body string) (*Message, error) {
	if conversationID == "" {
		return nil, errors.New("message conversation id is required")
	}
	if senderID == "" {
		return nil, errors.New("message sender id is required")
	}
	if body == "" {
		return nil, errors.New("message body is required")
	}

	return &Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
		CreatedAt:      time.Now(),
	}, nil
}
