package provider

import (
	"context"
	"errors"

	"github.com/staylodge/guest-service/internal/domain/entity"
)

// ErrEmailExists is returned by CreateAccount when the auth provider already
// has an account for the email. The provisioner reconciles this case by
// looking the account up instead of failing.
var ErrEmailExists = errors.New("email already registered with auth provider")

// Account is an auth-provider credential record. This service only creates
// accounts and generates verification links; it never mutates them.
type Account struct {
	ID        string
	Email     string
	Confirmed bool
	Metadata  map[string]interface{}
}

// CreateAccountParams are the inputs for administrative account creation.
type CreateAccountParams struct {
	Email     string
	Password  string
	Confirmed bool
	Metadata  map[string]interface{}
}

// AuthProvider is the administrative surface of the managed auth service.
type AuthProvider interface {
	CreateAccount(ctx context.Context, params CreateAccountParams) (*Account, error)
	// FindAccountByEmail returns (nil, nil) when no account matches. Only
	// used on the duplicate-error reconciliation path.
	FindAccountByEmail(ctx context.Context, email string) (*Account, error)
	GenerateVerificationLink(ctx context.Context, email string) (string, error)
}

// NotificationDispatcher delivers best-effort notices to property owners.
// Callers log and swallow failures; delivery is never part of the claim's
// success criteria.
type NotificationDispatcher interface {
	Send(ctx context.Context, notification *entity.Notification) error
}

// MailSender delivers transactional email, best-effort.
type MailSender interface {
	SendMail(ctx context.Context, to, subject, body string) error
}
