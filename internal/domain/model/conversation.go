package model

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the persistence model for chat threads.
type Conversation struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PropertyID    *uuid.UUID `gorm:"type:uuid;index" json:"property_id"`
	Type          string     `gorm:"size:30;not null" json:"type"`
	Archived      bool       `gorm:"not null;default:false" json:"archived"`
	LastMessageAt *time.Time `gorm:"index" json:"last_message_at"`
	CreatedAt     time.Time  `gorm:"default:now()" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Conversation) TableName() string {
	return "conversations"
}

// Participant links a profile to a conversation.
type Participant struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_participants_conversation_user" json:"conversation_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_participants_conversation_user;index" json:"user_id"`
	LastReadAt     *time.Time `json:"last_read_at"`
	JoinedAt       time.Time  `gorm:"default:now()" json:"joined_at"`
}

// TableName specifies the table name for GORM
func (Participant) TableName() string {
	return "participants"
}

// Message is a chat message. Rows are soft-deleted via the Deleted flag so
// previews and unread counts can skip them.
type Message struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index" json:"conversation_id"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	Body           string    `gorm:"type:text;not null" json:"body"`
	Deleted        bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt      time.Time `gorm:"default:now();index" json:"created_at"`
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}
