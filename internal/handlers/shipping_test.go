package handlers

import "testing"

func TestShippingCostAtThreshold(t *testing.T) {
	if got := shippingCostCents(50.00); got != 0 {
		t.Fatalf("expected free shipping at threshold, got %d cents", got)
	}
	if got := shippingCostCents(54.00); got != 0 {
		t.Fatalf("expected free shipping above threshold, got %d cents", got)
	}
}

func TestShippingCostBelowThreshold(t *testing.T) {
	tests := []float64{0, 10.00, 49.99}
	for _, subtotal := range tests {
		if got := shippingCostCents(subtotal); got != standardShippingCents {
			t.Fatalf("expected standard rate for subtotal %v, got %d cents", subtotal, got)
		}
	}
}

func TestShippingDisplayName(t *testing.T) {
	if got := shippingDisplayName(60.00); got != "Free Shipping" {
		t.Fatalf("expected Free Shipping, got %q", got)
	}
	if got := shippingDisplayName(20.00); got != "Standard Shipping" {
		t.Fatalf("expected Standard Shipping, got %q", got)
	}
}

func TestToCentsRounds(t *testing.T) {
	if got := toCents(12.00); got != 1200 {
		t.Fatalf("expected 1200, got %d", got)
	}
	// 19.99 is not exactly representable; rounding must still land on 1999.
	if got := toCents(19.99); got != 1999 {
		t.Fatalf("expected 1999, got %d", got)
	}
}

func TestReconcileShipping(t *testing.T) {
	if got := reconcileShipping(54.00, 54.00); got != 0 {
		t.Fatalf("expected zero shipping when total equals subtotal, got %v", got)
	}
	if got := reconcileShipping(41.00, 34.00); got != 7.00 {
		t.Fatalf("expected 7.00 shipping, got %v", got)
	}
	// A malformed snapshot can push subtotal above the charged total; the
	// result is floored at zero, never negative.
	if got := reconcileShipping(10.00, 25.00); got != 0 {
		t.Fatalf("expected floor at zero, got %v", got)
	}
}

func TestShippingOptionParamsFreeTier(t *testing.T) {
	params := shippingOptionParams(54.00)
	rate := params.ShippingRateData
	if *rate.FixedAmount.Amount != 0 {
		t.Fatalf("expected zero-cost option, got %d", *rate.FixedAmount.Amount)
	}
	if *rate.DisplayName != "Free Shipping" {
		t.Fatalf("expected Free Shipping option, got %q", *rate.DisplayName)
	}
}

func TestShippingOptionParamsStandardTier(t *testing.T) {
	params := shippingOptionParams(12.00)
	rate := params.ShippingRateData
	if *rate.FixedAmount.Amount != standardShippingCents {
		t.Fatalf("expected %d-cent option, got %d", standardShippingCents, *rate.FixedAmount.Amount)
	}
	if *rate.DisplayName != "Standard Shipping" {
		t.Fatalf("expected Standard Shipping option, got %q", *rate.DisplayName)
	}
	if *rate.DeliveryEstimate.Minimum.Value != 5 || *rate.DeliveryEstimate.Maximum.Value != 7 {
		t.Fatal("expected 5-7 business day estimate")
	}
}
