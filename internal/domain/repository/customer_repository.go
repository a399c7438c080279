package repository

import (
	"context"

	"github.com/staylodge/guest-service/internal/domain/entity"
)

// CustomerRepository is the identity-store surface for CRM customer records.
// Lookups return (nil, nil) when no row matches.
type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	FindByUserAndCompany(ctx context.Context, userID, companyID string) (*entity.Customer, error)
	FindByEmailAndProperty(ctx context.Context, email, propertyID string) (*entity.Customer, error)
	// Create returns errs.ErrDuplicateKey when (email, property) already exists.
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
}
