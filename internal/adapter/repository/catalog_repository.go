package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/staylodge/guest-service/internal/domain/entity"
	"github.com/staylodge/guest-service/internal/domain/model"
	"github.com/staylodge/guest-service/internal/domain/repository"
	"gorm.io/gorm"
)

type promotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) repository.PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) FindByID(ctx context.Context, id string) (*entity.Promotion, error) {
	promotionID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var promotion model.Promotion
	err = r.db.WithContext(ctx).Where("id = ?", promotionID).First(&promotion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entity.Promotion{
		ID:            promotion.ID.String(),
		PropertyID:    promotion.PropertyID.String(),
		Title:         promotion.Title,
		Description:   promotion.Description,
		DiscountType:  entity.DiscountType(promotion.DiscountType),
		DiscountValue: promotion.DiscountValue,
		IsActive:      promotion.IsActive,
		IsClaimable:   promotion.IsClaimable,
		CreatedAt:     promotion.CreatedAt,
	}, nil
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	propertyID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var property model.Property
	err = r.db.WithContext(ctx).Where("id = ?", propertyID).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entity.Property{
		ID:        property.ID.String(),
		CompanyID: property.CompanyID.String(),
		OwnerID:   property.OwnerID.String(),
		Name:      property.Name,
		Location:  property.Location,
		CreatedAt: property.CreatedAt,
	}, nil
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	companyID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var company model.Company
	err = r.db.WithContext(ctx).Where("id = ?", companyID).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entity.Company{
		ID:        company.ID.String(),
		Name:      company.Name,
		CreatedAt: company.CreatedAt,
	}, nil
}

type supportTicketRepository struct {
	db *gorm.DB
}

func NewSupportTicketRepository(db *gorm.DB) repository.SupportTicketRepository {
	return &supportTicketRepository{db: db}
}

func (r *supportTicketRepository) FindByConversationID(ctx context.Context, conversationID string) (*entity.SupportTicket, error) {
	cid, err := uuid.Parse(conversationID)
	if err != nil {
		return nil, err
	}

	var ticket model.SupportTicket
	err = r.db.WithContext(ctx).Where("conversation_id = ?", cid).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entity.SupportTicket{
		ID:             ticket.ID.String(),
		ConversationID: ticket.ConversationID.String(),
		Subject:        ticket.Subject,
		Status:         ticket.Status,
		Priority:       ticket.Priority,
		CreatedAt:      ticket.CreatedAt,
	}, nil
}
