package usecase

import (
	"context"
	"fmt"

	"github.com/staylodge/guest-service/internal/domain/entity"
	errs "github.com/staylodge/guest-service/internal/domain/errors"
	"github.com/staylodge/guest-service/internal/domain/provider"
	"github.com/staylodge/guest-service/internal/domain/repository"
	"go.uber.org/zap"
)

// PromoClaimTag is the CRM tag merged into a customer record on every claim.
const PromoClaimTag = "promo_claim"

// ClaimParams are the inputs of one promotion-claim request.
type ClaimParams struct {
	PromotionID string
	PropertyID  string
	GuestName   string
	GuestEmail  string
	GuestPhone  string
}

// ClaimResult is the successful outcome of a claim.
type ClaimResult struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
	GuestUserID    string `json:"guest_user_id"`
	IsNewUser      bool   `json:"is_new_user"`
}

// ClaimUsecase orchestrates the promotion-claim flow: validate the
// promotion and property, provision the identity, register the CRM lead,
// bind the conversation, then the best-effort tail (owner notification,
// verification email). The flow is deliberately not transactional: an
// account created before a later fatal failure persists and is picked up by
// the next attempt's resolve step.
type ClaimUsecase struct {
	logger      *zap.Logger
	promotions  repository.PromotionRepository
	properties  repository.PropertyRepository
	companies   repository.CompanyRepository
	provisioner *AccountProvisioner
	registrar   *LeadRegistrar
	binder      *ConversationBinder
	notifier    provider.NotificationDispatcher
	auth        provider.AuthProvider
	mailer      provider.MailSender
	clientURL   string
}

// NewClaimUsecase creates a new claim usecase.
func NewClaimUsecase(
	logger *zap.Logger,
	promotions repository.PromotionRepository,
	properties repository.PropertyRepository,
	companies repository.CompanyRepository,
	provisioner *AccountProvisioner,
	registrar *LeadRegistrar,
	binder *ConversationBinder,
	notifier provider.NotificationDispatcher,
	auth provider.AuthProvider,
	mailer provider.MailSender,
	clientURL string,
) *ClaimUsecase {
	return &ClaimUsecase{
		logger:      logger,
		promotions:  promotions,
		properties:  properties,
		companies:   companies,
		provisioner: provisioner,
		registrar:   registrar,
		binder:      binder,
		notifier:    notifier,
		auth:        auth,
		mailer:      mailer,
		clientURL:   clientURL,
	}
}

// Claim runs the end-to-end claim flow.
func (u *ClaimUsecase) Claim(ctx context.Context, params ClaimParams) (*ClaimResult, error) {
	// 1. Validate the promotion before touching any identity state.
	promo, err := u.promotions.FindByID(ctx, params.PromotionID)
	if err != nil {
		return nil, errs.NewInternalError("failed to load promotion", err)
	}
	if promo == nil {
		return nil, errs.NewNotFoundError("promotion", params.PromotionID)
	}
	if !promo.Claimable() {
		return nil, errs.NewBadRequestError("promotion is not active or not claimable")
	}

	property, err := u.properties.FindByID(ctx, params.PropertyID)
	if err != nil {
		return nil, errs.NewInternalError("failed to load property", err)
	}
	if property == nil {
		return nil, errs.NewNotFoundError("property", params.PropertyID)
	}

	company, err := u.companies.FindByID(ctx, property.CompanyID)
	if err != nil {
		return nil, errs.NewInternalError("failed to load company", err)
	}
	if company == nil {
		return nil, errs.NewNotFoundError("company", property.CompanyID)
	}

	// 2. Resolve or provision the guest identity.
	identityID, isNew, err := u.provisioner.ProvisionOrFetch(ctx, params.GuestEmail, params.GuestName, params.GuestPhone)
	if err != nil {
		return nil, err
	}

	// 3. CRM lead registration is best-effort: a failed CRM write must
	// never block the guest's access to their conversation.
	contact := entity.Contact{
		Email:    params.GuestEmail,
		FullName: params.GuestName,
		Phone:    params.GuestPhone,
	}
	if err := u.registrar.RegisterLead(ctx, identityID, property.ID, property.CompanyID, contact, PromoClaimTag); err != nil {
		u.logger.Warn("Failed to register customer lead",
			zap.String("identity_id", identityID),
			zap.String("property_id", property.ID),
			zap.Error(err),
		)
	}

	// 4. The conversation is the primary deliverable; failure is fatal.
	conversation, err := u.binder.Bind(ctx, identityID, property.ID, property.OwnerID, promo)
	if err != nil {
		return nil, err
	}

	// 5. Best-effort tail: notify the owner and, for new accounts, deliver
	// the verification link. Neither outcome affects the claim's result.
	u.notifyOwner(ctx, property.OwnerID, params.GuestName, promo, conversation.ID)
	if isNew {
		u.sendVerificationEmail(ctx, params.GuestEmail, params.GuestName)
	}

	return &ClaimResult{
		Message:        "Promotion claimed successfully",
		ConversationID: conversation.ID,
		GuestUserID:    identityID,
		IsNewUser:      isNew,
	}, nil
}

func (u *ClaimUsecase) notifyOwner(ctx context.Context, ownerID, guestName string, promo *entity.Promotion, conversationID string) {
	notification, err := entity.NewNotification(
		ownerID,
		"New promotion inquiry",
		fmt.Sprintf("%s claimed %s (%s)", guestName, promo.Title, promo.OfferLabel()),
		entity.PriorityNormal,
		fmt.Sprintf("%s/conversations/%s", u.clientURL, conversationID),
	)
	if err != nil {
		u.logger.Warn("Failed to build owner notification", zap.Error(err))
		return
	}

	if err := u.notifier.Send(ctx, notification); err != nil {
		u.logger.Warn("Failed to notify property owner",
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
	}
}

func (u *ClaimUsecase) sendVerificationEmail(ctx context.Context, email, name string) {
	link, err := u.auth.GenerateVerificationLink(ctx, email)
	if err != nil {
		u.logger.Warn("Failed to generate verification link",
			zap.String("email", email),
			zap.Error(err),
		)
		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your inquiry was sent. Confirm your email to access your conversation:</p><p><a href=\"%s\">Confirm email</a></p>",
		name, link,
	)
	if err := u.mailer.SendMail(ctx, email, "Confirm your email", body); err != nil {
		u.logger.Warn("Failed to send verification email",
			zap.String("email", email),
			zap.Error(err),
		)
	}
}
