package entity

import (
	"errors"
	"strings"
	"time"
)

// UserType distinguishes platform roles on a profile.
type UserType string

const (
	UserTypeGuest UserType = "guest"
	UserTypeOwner UserType = "owner"
	UserTypeStaff UserType = "staff"
)

// Profile is the platform-side user record. Its ID always equals the ID of
// the auth account it was created for; the pair is provisioned together and
// the ID never changes afterwards.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	UserType  UserType  `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfile validates and builds a profile linked to an auth account ID.
func NewProfile(id, email, fullName, phone string, userType UserType) (*Profile, error) {
	if id == "" {
		return nil, errors.New("profile id is required")
	}
	if email == "" {
		return nil, errors.New("profile email is required")
	}

	now := time.Now()

	return &Profile{
		ID:        id,
		Email:     NormalizeEmail(email),
		FullName:  fullName,
		Phone:     phone,
		UserType:  userType,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NormalizeEmail lower-cases and trims an email address. All identity
// lookups go through this so the same person never forks on casing.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
