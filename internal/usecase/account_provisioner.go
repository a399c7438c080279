package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/staylodge/guest-service/internal/domain/entity"
	errs "github.com/staylodge/guest-service/internal/domain/errors"
	"github.com/staylodge/guest-service/internal/domain/provider"
	"github.com/staylodge/guest-service/internal/domain/repository"
	"go.uber.org/zap"
)

// AccountProvisioner idempotently ensures an (auth account, profile) pair
// exists for an email. Concurrent callers for the same email converge on a
// single profile row; there are no in-process locks, only the store's
// uniqueness constraints plus the explicit duplicate-key reconcile branches.
type AccountProvisioner struct {
	logger   *zap.Logger
	resolver *IdentityResolver
	profiles repository.ProfileRepository
	auth     provider.AuthProvider
}

// NewAccountProvisioner creates a new account provisioner.
func NewAccountProvisioner(
	logger *zap.Logger,
	resolver *IdentityResolver,
	profiles repository.ProfileRepository,
	auth provider.AuthProvider,
) *AccountProvisioner {
	return &AccountProvisioner{
		logger:   logger,
		resolver: resolver,
		profiles: profiles,
		auth:     auth,
	}
}

// ProvisionOrFetch returns the identity ID for the email, creating whichever
// of the auth account and profile is missing. isNew reports whether this
// call created the profile; under concurrent claims at most one caller
// observes isNew=true (best-effort, see the reconcile branches).
func (p *AccountProvisioner) ProvisionOrFetch(ctx context.Context, email, fullName, phone string) (identityID string, isNew bool, err error) {
	email = entity.NormalizeEmail(email)

	// 1. An existing profile settles it; the auth account is implied.
	profile, err := p.resolver.Resolve(ctx, email)
	if err != nil {
		return "", false, errs.NewInternalError("failed to resolve identity", err)
	}
	if profile != nil {
		return profile.ID, false, nil
	}

	// 2. Create the auth account with a throwaway credential. The guest sets
	// a real password later through the verification flow.
	password, err := generatePassword()
	if err != nil {
		return "", false, errs.NewInternalError("failed to generate credential", err)
	}

	account, err := p.auth.CreateAccount(ctx, provider.CreateAccountParams{
		Email:     email,
		Password:  password,
		Confirmed: false,
		Metadata: map[string]interface{}{
			"full_name": fullName,
			"phone":     phone,
		},
	})

	switch {
	case errors.Is(err, provider.ErrEmailExists):
		// 3. Account exists at the auth layer without a profile, e.g. from a
		// prior partial failure or a concurrent claim that won the account
		// race. Locate it and create the missing profile.
		account, err = p.auth.FindAccountByEmail(ctx, email)
		if err != nil {
			return "", false, errs.NewAuthProviderError("failed to locate existing account", err)
		}
		if account == nil {
			return "", false, errs.NewAuthProviderError(
				fmt.Sprintf("account reported as registered but not found: %s", email), nil)
		}

		created, err := p.createProfile(ctx, account.ID, email, fullName, phone)
		if err != nil {
			return "", false, err
		}
		return account.ID, created, nil

	case err != nil:
		// Any other provider failure is fatal to the claim.
		return "", false, errs.NewAuthProviderError("failed to create auth account", err)
	}

	// 4. Account creation succeeded. Re-check for a profile under the new
	// ID: a concurrent request can win the profile race after this one won
	// the account race.
	existing, err := p.profiles.FindByID(ctx, account.ID)
	if err != nil {
		return "", false, errs.NewInternalError("failed to re-check profile", err)
	}
	if existing != nil {
		return account.ID, false, nil
	}

	created, err := p.createProfile(ctx, account.ID, email, fullName, phone)
	if err != nil {
		return "", false, err
	}

	p.logger.Info("Provisioned guest identity",
		zap.String("identity_id", account.ID),
		zap.Bool("is_new", created),
	)

	return account.ID, created, nil
}

// createProfile inserts the profile row, reconciling a lost insert race by
// re-fetching. Returns whether this call created the row.
func (p *AccountProvisioner) createProfile(ctx context.Context, id, email, fullName, phone string) (bool, error) {
	profile, err := entity.NewProfile(id, email, fullName, phone, entity.UserTypeGuest)
	if err != nil {
		return false, errs.NewValidationError("invalid profile", err)
	}

	err = p.profiles.Create(ctx, profile)
	if err == nil {
		return true, nil
	}

	if errs.IsDuplicateKey(err) {
		// Lost the insert race; the row is there now.
		existing, ferr := p.profiles.FindByID(ctx, id)
		if ferr != nil {
			return false, errs.NewInternalError("failed to re-fetch profile after duplicate", ferr)
		}
		if existing == nil {
			return false, errs.NewInternalError("profile duplicate reported but row not found", nil)
		}
		return false, nil
	}

	return false, errs.NewInternalError("failed to create profile", err)
}

// generatePassword returns a random throwaway credential for accounts
// provisioned on behalf of a guest.
func generatePassword() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
