// Package pricing computes volume discounts and bulk seat pricing for
// organization subscriptions. All functions are pure.
package pricing

// TaxRate is the flat GST rate applied to the post-discount amount.
const TaxRate = 0.18

// VolumeDiscount returns the discount percentage for a seat count.
// Bands are non-overlapping and monotonic.
func VolumeDiscount(seatCount int) int {
	switch {
	case seatCount >= 500:
		return 30
	case seatCount >= 100:
		return 20
	case seatCount >= 50:
		return 10
	default:
		return 0
	}
}

// BulkPrice is the full pricing breakdown for a seat block.
type BulkPrice struct {
	BasePrice          float64 `json:"base_price"`
	SeatCount          int     `json:"seat_count"`
	Subtotal           float64 `json:"subtotal"`
	DiscountPercentage int     `json:"discount_percentage"`
	DiscountAmount     float64 `json:"discount_amount"`
	TaxAmount          float64 `json:"tax_amount"`
	FinalAmount        float64 `json:"final_amount"`
	PricePerSeat       float64 `json:"price_per_seat"`
}

// BulkPricing prices seatCount seats at basePrice each, applying the volume
// discount band and tax. A single seat falls in the 0% band.
func BulkPricing(basePrice float64, seatCount int) BulkPrice {
	subtotal := basePrice * float64(seatCount)
	discountPct := VolumeDiscount(seatCount)
	discountAmount := subtotal * float64(discountPct) / 100
	afterDiscount := subtotal - discountAmount
	taxAmount := afterDiscount * TaxRate
	finalAmount := afterDiscount + taxAmount

	pricePerSeat := finalAmount
	if seatCount > 0 {
		pricePerSeat = finalAmount / float64(seatCount)
	}

	return BulkPrice{
		BasePrice:          basePrice,
		SeatCount:          seatCount,
		Subtotal:           subtotal,
		DiscountPercentage: discountPct,
		DiscountAmount:     discountAmount,
		TaxAmount:          taxAmount,
		FinalAmount:        finalAmount,
		PricePerSeat:       pricePerSeat,
	}
}
