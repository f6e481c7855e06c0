package pricing_test

import (
	"testing"

	"github.com/campushq/licensing/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func TestVolumeDiscount(t *testing.T) {
	tests := []struct {
		name      string
		seatCount int
		want      int
	}{
		{"single seat", 1, 0},
		{"small block", 10, 0},
		{"just below first band", 49, 0},
		{"first band lower edge", 50, 10},
		{"first band middle", 75, 10},
		{"first band upper edge", 99, 10},
		{"second band lower edge", 100, 20},
		{"second band middle", 250, 20},
		{"second band upper edge", 499, 20},
		{"top band lower edge", 500, 30},
		{"top band large", 1000, 30},
		{"top band very large", 10000, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.VolumeDiscount(tt.seatCount))
		})
	}
}

func TestBulkPricingNoDiscount(t *testing.T) {
	result := pricing.BulkPricing(100, 10)

	assert.Equal(t, 100.0, result.BasePrice)
	assert.Equal(t, 10, result.SeatCount)
	assert.Equal(t, 1000.0, result.Subtotal)
	assert.Equal(t, 0, result.DiscountPercentage)
	assert.Equal(t, 0.0, result.DiscountAmount)
	assert.InDelta(t, 180.0, result.TaxAmount, 1e-9)
	assert.InDelta(t, 1180.0, result.FinalAmount, 1e-9)
	assert.InDelta(t, 118.0, result.PricePerSeat, 1e-9)
}

func TestBulkPricingWithDiscountBands(t *testing.T) {
	tests := []struct {
		name         string
		basePrice    float64
		seatCount    int
		wantSubtotal float64
		wantDiscount int
		wantDiscAmt  float64
	}{
		{"10% at 50 seats", 100, 50, 5000, 10, 500},
		{"20% at 100 seats", 100, 100, 10000, 20, 2000},
		{"30% at 500 seats", 100, 500, 50000, 30, 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pricing.BulkPricing(tt.basePrice, tt.seatCount)

			assert.Equal(t, tt.wantSubtotal, result.Subtotal)
			assert.Equal(t, tt.wantDiscount, result.DiscountPercentage)
			assert.Equal(t, tt.wantDiscAmt, result.DiscountAmount)

			afterDiscount := tt.wantSubtotal - tt.wantDiscAmt
			assert.InDelta(t, afterDiscount*0.18, result.TaxAmount, 1e-9)
			assert.InDelta(t, afterDiscount*1.18, result.FinalAmount, 1e-9)
		})
	}
}

// The 50-seat, 100-base-price breakdown is the canonical worked example for
// volume pricing: 10% discount, 5000 subtotal, 500 off, 5310 final.
func TestBulkPricingWorkedExample(t *testing.T) {
	result := pricing.BulkPricing(100, 50)

	assert.Equal(t, 10, result.DiscountPercentage)
	assert.Equal(t, 5000.0, result.Subtotal)
	assert.Equal(t, 500.0, result.DiscountAmount)
	assert.InDelta(t, 5310.0, result.FinalAmount, 1e-9)
}

func TestBulkPricingPricePerSeatConsistency(t *testing.T) {
	result := pricing.BulkPricing(100, 100)
	assert.InDelta(t, result.FinalAmount, result.PricePerSeat*float64(result.SeatCount), 1e-6)
}

func TestBulkPricingSingleSeat(t *testing.T) {
	result := pricing.BulkPricing(500, 1)

	assert.Equal(t, 1, result.SeatCount)
	assert.Equal(t, 500.0, result.Subtotal)
	assert.Equal(t, 0, result.DiscountPercentage)
	assert.InDelta(t, 500*1.18, result.FinalAmount, 1e-9)
	assert.InDelta(t, result.FinalAmount, result.PricePerSeat, 1e-9)
}
