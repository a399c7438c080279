package repository

import (
	"context"

	"github.com/staylodge/guest-service/internal/domain/entity"
)

// ConversationRepository is the identity-store surface for chat threads,
// participants and messages.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	AddParticipant(ctx context.Context, conversationID, userID string) error
	// CreateMessage stores the message and advances the conversation's
	// last-activity timestamp.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// ListByParticipants returns conversations where any of the given user
	// IDs participates, restricted to one property and the archived flag,
	// ordered by last activity descending with nulls last.
	ListByParticipants(ctx context.Context, userIDs []string, propertyID string, archived bool) ([]*entity.Conversation, error)
	ListParticipants(ctx context.Context, conversationID string) ([]*entity.Participant, error)
	// FindLastMessage returns the newest non-deleted message, or (nil, nil).
	FindLastMessage(ctx context.Context, conversationID string) (*entity.Message, error)
	// CountUnread counts non-deleted messages from other senders created
	// after the participant's read watermark.
	CountUnread(ctx context.Context, conversationID, userID string) (int64, error)
}
