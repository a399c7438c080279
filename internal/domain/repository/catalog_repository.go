package repository

import (
	"context"

	"github.com/staylodge/guest-service/internal/domain/entity"
)

// PromotionRepository reads promotions; this service never writes them.
type PromotionRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Promotion, error)
}

// PropertyRepository reads properties and their owning companies.
type PropertyRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Property, error)
}

// CompanyRepository reads operator companies.
type CompanyRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Company, error)
}

// SupportTicketRepository reads tickets attached to support conversations.
type SupportTicketRepository interface {
	FindByConversationID(ctx context.Context, conversationID string) (*entity.SupportTicket, error)
}
