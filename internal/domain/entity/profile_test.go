package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "guest@example.com", NormalizeEmail("Guest@Example.COM"))
	assert.Equal(t, "guest@example.com", NormalizeEmail("  guest@example.com  "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestNewProfile(t *testing.T) {
	profile, err := NewProfile("acct-1", " Guest@Example.com ", "Guest One", "+15550100", UserTypeGuest)

	require.NoError(t, err)
	assert.Equal(t, "acct-1", profile.ID)
	assert.Equal(t, "guest@example.com", profile.Email)
	assert.Equal(t, UserTypeGuest, profile.UserType)
}

func TestNewProfile_Validation(t *testing.T) {
	_, err := NewProfile("", "guest@example.com", "", "", UserTypeGuest)
	assert.Error(t, err)

	_, err = NewProfile("acct-1", "", "", "", UserTypeGuest)
	assert.Error(t, err)
}
