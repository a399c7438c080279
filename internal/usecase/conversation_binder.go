package usecase

import (
	"context"
	"fmt"

	"github.com/staylodge/guest-service/internal/domain/entity"
	errs "github.com/staylodge/guest-service/internal/domain/errors"
	"github.com/staylodge/guest-service/internal/domain/repository"
	"go.uber.org/zap"
)

// ConversationBinder creates the guest-inquiry conversation linking the
// claimant to the property owner. Every claim produces a fresh thread; the
// owner sees a distinct inquiry per promotion claimed, so there is no dedup
// against earlier conversations.
type ConversationBinder struct {
	logger        *zap.Logger
	conversations repository.ConversationRepository
}

// NewConversationBinder creates a new conversation binder.
func NewConversationBinder(logger *zap.Logger, conversations repository.ConversationRepository) *ConversationBinder {
	return &ConversationBinder{
		logger:        logger,
		conversations: conversations,
	}
}

// Bind creates the conversation, its two participants and the seeded
// promotion message. Failure here is fatal to the claim: the conversation is
// the primary deliverable of the flow.
func (b *ConversationBinder) Bind(ctx context.Context, identityID, propertyID, ownerID string, promo *entity.Promotion) (*entity.Conversation, error) {
	conversation, err := entity.NewConversation(propertyID, entity.ConversationTypeGuestInquiry)
	if err != nil {
		return nil, errs.NewValidationError("invalid conversation", err)
	}

	if err := b.conversations.Create(ctx, conversation); err != nil {
		return nil, errs.NewInternalError("failed to create conversation", err)
	}

	if err := b.conversations.AddParticipant(ctx, conversation.ID, identityID); err != nil {
		return nil, errs.NewInternalError("failed to add guest participant", err)
	}
	if err := b.conversations.AddParticipant(ctx, conversation.ID, ownerID); err != nil {
		return nil, errs.NewInternalError("failed to add owner participant", err)
	}

	message, err := entity.NewMessage(conversation.ID, identityID, promoMessageBody(promo))
	if err != nil {
		return nil, errs.NewValidationError("invalid message", err)
	}
	if err := b.conversations.CreateMessage(ctx, message); err != nil {
		return nil, errs.NewInternalError("failed to seed conversation message", err)
	}

	b.logger.Info("Bound guest inquiry conversation",
		zap.String("conversation_id", conversation.ID),
		zap.String("identity_id", identityID),
		zap.String("property_id", propertyID),
	)

	return conversation, nil
}

// promoMessageBody derives the seeded message from the promotion's discount,
// appending the description when present.
func promoMessageBody(promo *entity.Promotion) string {
	body := promo.OfferLabel()
	if promo.Description != "" {
		body = fmt.Sprintf("%s - %s", body, promo.Description)
	}
	return body
}
