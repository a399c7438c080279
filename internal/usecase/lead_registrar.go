package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/staylodge/guest-service/internal/domain/entity"
	errs "github.com/staylodge/guest-service/internal/domain/errors"
	"github.com/staylodge/guest-service/internal/domain/repository"
	"go.uber.org/zap"
)

// LeadRegistrar upserts the property-scoped CRM customer record for a
// resolved identity. Tag merges are additive and deduplicating; contact
// fields on an existing record are never overwritten.
type LeadRegistrar struct {
	logger    *zap.Logger
	customers repository.CustomerRepository
}

// NewLeadRegistrar creates a new lead registrar.
func NewLeadRegistrar(logger *zap.Logger, customers repository.CustomerRepository) *LeadRegistrar {
	return &LeadRegistrar{
		logger:    logger,
		customers: customers,
	}
}

// RegisterLead ensures a customer record exists and carries the tag.
//
// The lookup is keyed by (user, company) while the customers table is unique
// per (email, property) — this predates full property isolation and is kept
// as-is pending product clarification.
func (r *LeadRegistrar) RegisterLead(ctx context.Context, identityID, propertyID, companyID string, contact entity.Contact, tag string) error {
	existing, err := r.customers.FindByUserAndCompany(ctx, identityID, companyID)
	if err != nil {
		return fmt.Errorf("failed to look up customer: %w", err)
	}

	if existing == nil {
		lead, err := entity.NewLead(identityID, propertyID, companyID, contact, tag)
		if err != nil {
			return fmt.Errorf("invalid lead: %w", err)
		}

		err = r.customers.Create(ctx, lead)
		if err == nil {
			r.logger.Info("Registered new customer lead",
				zap.String("identity_id", identityID),
				zap.String("property_id", propertyID),
			)
			return nil
		}
		if !errs.IsDuplicateKey(err) {
			return fmt.Errorf("failed to create customer: %w", err)
		}

		// Lost the insert race against a concurrent claim; fall through to
		// merge into the row that won.
		existing, err = r.customers.FindByEmailAndProperty(ctx, contact.Email, propertyID)
		if err != nil {
			return fmt.Errorf("failed to re-fetch customer after duplicate: %w", err)
		}
		if existing == nil {
			return fmt.Errorf("customer duplicate reported but row not found")
		}
	}

	added := existing.AddTag(tag)
	existing.TouchContact(time.Now())

	if err := r.customers.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	if added {
		r.logger.Info("Merged tag into customer record",
			zap.String("customer_id", existing.ID),
			zap.String("tag", tag),
		)
	}

	return nil
}
