package usecase

import (
	"context"
	"fmt"

	"github.com/staylodge/guest-service/internal/domain/entity"
	"github.com/staylodge/guest-service/internal/domain/repository"
	"go.uber.org/zap"
)

// IdentityResolver answers whether a person already has a platform profile.
// Profile absence is the actionable signal for provisioning; the auth
// provider is deliberately not consulted on this path.
type IdentityResolver struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
}

// NewIdentityResolver creates a new identity resolver.
func NewIdentityResolver(logger *zap.Logger, profiles repository.ProfileRepository) *IdentityResolver {
	return &IdentityResolver{
		logger:   logger,
		profiles: profiles,
	}
}

// Resolve looks up a profile by normalized email. Returns (nil, nil) when no
// profile exists; it never treats absence as an error.
func (r *IdentityResolver) Resolve(ctx context.Context, email string) (*entity.Profile, error) {
	profile, err := r.profiles.FindByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to look up profile by email: %w", err)
	}
	return profile, nil
}
