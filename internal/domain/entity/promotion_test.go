package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPromotion_OfferLabel(t *testing.T) {
	tests := []struct {
		name     string
		promo    Promotion
		expected string
	}{
		{
			name:     "percentage",
			promo:    Promotion{DiscountType: DiscountPercentage, DiscountValue: decimal.NewFromInt(20)},
			expected: "20% OFF",
		},
		{
			name:     "fixed amount",
			promo:    Promotion{DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(50)},
			expected: "$50 OFF",
		},
		{
			name:     "free nights",
			promo:    Promotion{DiscountType: DiscountFreeNights, DiscountValue: decimal.NewFromInt(3)},
			expected: "3 Free Nights",
		},
		{
			name:     "fractional percentage keeps precision",
			promo:    Promotion{DiscountType: DiscountPercentage, DiscountValue: decimal.NewFromFloat(12.5)},
			expected: "12.5% OFF",
		},
		{
			name:     "unknown type falls back to title",
			promo:    Promotion{DiscountType: "mystery", Title: "Mystery Deal"},
			expected: "Mystery Deal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.promo.OfferLabel())
		})
	}
}

func TestPromotion_Claimable(t *testing.T) {
	assert.True(t, (&Promotion{IsActive: true, IsClaimable: true}).Claimable())
	assert.False(t, (&Promotion{IsActive: false, IsClaimable: true}).Claimable())
	assert.False(t, (&Promotion{IsActive: true, IsClaimable: false}).Claimable())
}
