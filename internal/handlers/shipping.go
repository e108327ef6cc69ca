package handlers

import "math"

// Two-tier shipping step function: orders at or above the threshold ship
// free, everything else pays the flat standard rate.
const (
	freeShippingThreshold = 50.0
	standardShippingCents = 700
)

// toCents converts a major-unit price to the minor units the payment
// processor expects.
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func qualifiesForFreeShipping(subtotal float64) bool {
	return subtotal >= freeShippingThreshold
}

// shippingCostCents returns the cost of the shipping option a cart qualifies
// for.
func shippingCostCents(subtotal float64) int64 {
	if qualifiesForFreeShipping(subtotal) {
		return 0
	}
	return standardShippingCents
}

func shippingDisplayName(subtotal float64) string {
	if qualifiesForFreeShipping(subtotal) {
		return "Free Shipping"
	}
	return "Standard Shipping"
}

// reconcileShipping derives the shipping actually paid from the processor's
// authoritative charged total, floored at zero so a malformed snapshot can
// never produce a negative shipping line.
func reconcileShipping(total, subtotal float64) float64 {
	shipping := total - subtotal
	if shipping < 0 {
		return 0
	}
	return shipping
}
