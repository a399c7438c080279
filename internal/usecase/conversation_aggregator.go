package usecase

import (
	"context"

	"github.com/staylodge/guest-service/internal/domain/entity"
	errs "github.com/staylodge/guest-service/internal/domain/errors"
	"github.com/staylodge/guest-service/internal/domain/repository"
	"go.uber.org/zap"
)

// ConversationAggregator resolves the conversations of one CRM customer for
// the CRM detail view. A customer record may predate any auth identity, so
// participant identity is inferred at read time: the linked user ID when
// set, otherwise every profile matching the customer's email.
type ConversationAggregator struct {
	logger        *zap.Logger
	customers     repository.CustomerRepository
	profiles      repository.ProfileRepository
	conversations repository.ConversationRepository
	properties    repository.PropertyRepository
	tickets       repository.SupportTicketRepository
}

// NewConversationAggregator creates a new conversation aggregator.
func NewConversationAggregator(
	logger *zap.Logger,
	customers repository.CustomerRepository,
	profiles repository.ProfileRepository,
	conversations repository.ConversationRepository,
	properties repository.PropertyRepository,
	tickets repository.SupportTicketRepository,
) *ConversationAggregator {
	return &ConversationAggregator{
		logger:        logger,
		customers:     customers,
		profiles:      profiles,
		conversations: conversations,
		properties:    properties,
		tickets:       tickets,
	}
}

// ListConversations returns the customer's conversations for the customer's
// property only, newest activity first. A customer scoped to property A
// never sees conversations of property B, even when the same profile
// participates in both.
func (a *ConversationAggregator) ListConversations(ctx context.Context, customerID string, archived bool) ([]entity.ConversationView, error) {
	customer, err := a.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, errs.NewInternalError("failed to load customer", err)
	}
	if customer == nil {
		return nil, errs.NewNotFoundError("customer", customerID)
	}

	userIDs, err := a.resolveParticipantIDs(ctx, customer)
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		// No account, so the person cannot be a participant in anything yet.
		return []entity.ConversationView{}, nil
	}

	conversations, err := a.conversations.ListByParticipants(ctx, userIDs, customer.PropertyID, archived)
	if err != nil {
		return nil, errs.NewInternalError("failed to list conversations", err)
	}
	if len(conversations) == 0 {
		return []entity.ConversationView{}, nil
	}

	// Property summary is shared by every row; resolve it once.
	propertySummary := a.loadPropertySummary(ctx, customer.PropertyID)

	views := make([]entity.ConversationView, 0, len(conversations))
	for _, conversation := range conversations {
		// The participant query is already property-filtered; skip anything
		// that slips through regardless.
		if conversation.PropertyID == nil || *conversation.PropertyID != customer.PropertyID {
			continue
		}
		views = append(views, a.enrich(ctx, customer, conversation, propertySummary))
	}

	return views, nil
}

// resolveParticipantIDs determines which profile IDs stand in for the
// customer. A customer without a linked user may still have signed up under
// the same email through an unrelated path.
func (a *ConversationAggregator) resolveParticipantIDs(ctx context.Context, customer *entity.Customer) ([]string, error) {
	if customer.UserID != nil {
		return []string{*customer.UserID}, nil
	}

	profiles, err := a.profiles.SearchByEmail(ctx, customer.Email)
	if err != nil {
		return nil, errs.NewInternalError("failed to search profiles by email", err)
	}

	ids := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		ids = append(ids, profile.ID)
	}
	return ids, nil
}

// enrich fills the view fields for one conversation. Any single enrichment
// failure is logged and leaves that field empty; it never drops the
// conversation from the result.
func (a *ConversationAggregator) enrich(ctx context.Context, customer *entity.Customer, conversation *entity.Conversation, property *entity.PropertySummary) entity.ConversationView {
	view := entity.ConversationView{
		Conversation: *conversation,
		Participants: []entity.ParticipantView{},
		Property:     property,
	}

	profilesByID := map[string]*entity.Profile{}

	participants, err := a.conversations.ListParticipants(ctx, conversation.ID)
	if err != nil {
		a.logger.Warn("Failed to enrich participants",
			zap.String("conversation_id", conversation.ID),
			zap.Error(err),
		)
	} else {
		for _, participant := range participants {
			pv := entity.ParticipantView{UserID: participant.UserID}
			profile, perr := a.profiles.FindByID(ctx, participant.UserID)
			if perr != nil {
				a.logger.Warn("Failed to load participant profile",
					zap.String("user_id", participant.UserID),
					zap.Error(perr),
				)
			} else if profile != nil {
				profilesByID[profile.ID] = profile
				pv.FullName = profile.FullName
				pv.Email = profile.Email
				pv.UserType = profile.UserType
			}
			view.Participants = append(view.Participants, pv)
		}
	}

	lastMessage, err := a.conversations.FindLastMessage(ctx, conversation.ID)
	if err != nil {
		a.logger.Warn("Failed to load last message",
			zap.String("conversation_id", conversation.ID),
			zap.Error(err),
		)
	} else if lastMessage != nil {
		mv := &entity.MessageView{
			ID:        lastMessage.ID,
			Body:      lastMessage.Body,
			SenderID:  lastMessage.SenderID,
			CreatedAt: lastMessage.CreatedAt,
		}
		if sender, ok := profilesByID[lastMessage.SenderID]; ok {
			mv.SenderName = sender.FullName
		}
		view.LastMessage = mv
	}

	// Guests without an account have no read watermark; their unread count
	// is defined as zero.
	if customer.UserID != nil {
		count, err := a.conversations.CountUnread(ctx, conversation.ID, *customer.UserID)
		if err != nil {
			a.logger.Warn("Failed to count unread messages",
				zap.String("conversation_id", conversation.ID),
				zap.Error(err),
			)
		} else {
			view.UnreadCount = count
		}
	}

	if conversation.Type == entity.ConversationTypeSupport {
		ticket, err := a.tickets.FindByConversationID(ctx, conversation.ID)
		if err != nil {
			a.logger.Warn("Failed to load support ticket",
				zap.String("conversation_id", conversation.ID),
				zap.Error(err),
			)
		} else if ticket != nil {
			view.SupportTicket = &entity.SupportTicketSummary{
				ID:       ticket.ID,
				Subject:  ticket.Subject,
				Status:   ticket.Status,
				Priority: ticket.Priority,
			}
		}
	}

	return view
}

// loadPropertySummary resolves the property header, nil on failure.
func (a *ConversationAggregator) loadPropertySummary(ctx context.Context, propertyID string) *entity.PropertySummary {
	property, err := a.properties.FindByID(ctx, propertyID)
	if err != nil || property == nil {
		if err != nil {
			a.logger.Warn("Failed to load property summary",
				zap.String("property_id", propertyID),
				zap.Error(err),
			)
		}
		return nil
	}
	return &entity.PropertySummary{
		ID:       property.ID,
		Name:     property.Name,
		Location: property.Location,
	}
}
