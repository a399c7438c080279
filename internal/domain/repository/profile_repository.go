package repository

import (
	"context"

	"github.com/staylodge/guest-service/internal/domain/entity"
)

// ProfileRepository is the identity-store surface for platform profiles.
// Lookups return (nil, nil) when no row matches.
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	// SearchByEmail returns every profile whose email matches
	// case-insensitively. Used when a customer row has no linked user yet.
	SearchByEmail(ctx context.Context, email string) ([]*entity.Profile, error)
	// Create returns errs.ErrDuplicateKey when the row already exists.
	Create(ctx context.Context, profile *entity.Profile) error
}
