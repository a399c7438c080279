package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLead(t *testing.T) {
	contact := Contact{Email: "Guest@Example.com", FullName: "Guest One", Phone: "+15550100"}

	lead, err := NewLead("user-1", "prop-1", "company-1", contact, "promo_claim")

	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", lead.Email)
	assert.Equal(t, CustomerStatusLead, lead.Status)
	assert.Equal(t, "chat", lead.Source)
	assert.Equal(t, []string{"promo_claim"}, lead.Tags)
	require.NotNil(t, lead.UserID)
	assert.Equal(t, "user-1", *lead.UserID)
	assert.NotNil(t, lead.LastContactDate)
}

func TestNewLead_WithoutUser(t *testing.T) {
	lead, err := NewLead("", "prop-1", "company-1", Contact{Email: "guest@example.com"}, "")

	require.NoError(t, err)
	assert.Nil(t, lead.UserID)
	assert.Empty(t, lead.Tags)
}

func TestNewLead_Validation(t *testing.T) {
	_, err := NewLead("user-1", "", "company-1", Contact{Email: "guest@example.com"}, "")
	assert.Error(t, err)

	_, err = NewLead("user-1", "prop-1", "", Contact{Email: "guest@example.com"}, "")
	assert.Error(t, err)

	_, err = NewLead("user-1", "prop-1", "company-1", Contact{}, "")
	assert.Error(t, err)
}

func TestCustomer_AddTag(t *testing.T) {
	c := &Customer{Tags: []string{"vip"}}

	assert.True(t, c.AddTag("promo_claim"))
	assert.Equal(t, []string{"vip", "promo_claim"}, c.Tags)

	// Second merge is a no-op.
	assert.False(t, c.AddTag("promo_claim"))
	assert.Equal(t, []string{"vip", "promo_claim"}, c.Tags)
}

func TestCustomer_TouchContact(t *testing.T) {
	c := &Customer{}
	at := time.Now()

	c.TouchContact(at)

	require.NotNil(t, c.LastContactDate)
	assert.Equal(t, at, *c.LastContactDate)
	assert.Equal(t, at, c.UpdatedAt)
}
