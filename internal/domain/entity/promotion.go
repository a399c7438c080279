package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType is the kind of discount a promotion offers.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed_amount"
	DiscountFreeNights DiscountType = "free_nights"
)

// Promotion is a read-only input to the claim flow; this service never
// mutates promotions.
type Promotion struct {
	ID            string          `json:"id"`
	PropertyID    string          `json:"property_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	IsActive      bool            `json:"is_active"`
	IsClaimable   bool            `json:"is_claimable"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Claimable reports whether the promotion can currently be claimed.
func (p *Promotion) Claimable() bool {
	return p.IsActive && p.IsClaimable
}

// OfferLabel renders the discount as the short label shown in the seeded
// conversation message, e.g. "20% OFF", "$50 OFF" or "3 Free Nights".
func (p *Promotion) OfferLabel() string {
	switch p.DiscountType {
	case DiscountPercentage:
		return fmt.Sprintf("%s%% OFF", p.DiscountValue.String())
	case DiscountFixed:
		return fmt.Sprintf("$%s OFF", p.DiscountValue.String())
	case DiscountFreeNights:
		return fmt.Sprintf("%s Free Nights", p.DiscountValue.String())
	default:
		return p.Title
	}
}
