package handlers

import (
	"testing"

	"storefront/internal/models"
)

func cartFixture() []models.CartItem {
	return []models.CartItem{
		{Product: models.Product{ID: "a", Name: "A", Price: 12.00}, Quantity: 2},
		{Product: models.Product{ID: "b", Name: "B", Price: 30.00}, Quantity: 1},
	}
}

func TestApplyQuantityOverwrites(t *testing.T) {
	items := applyQuantity(cartFixture(), "a", 5)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestApplyQuantityZeroRemoves(t *testing.T) {
	for _, quantity := range []int{0, -3} {
		items := applyQuantity(cartFixture(), "a", quantity)
		if len(items) != 1 {
			t.Fatalf("expected 1 item after removal with quantity %d, got %d", quantity, len(items))
		}
		if items[0].Product.ID != "b" {
			t.Fatalf("expected remaining item b, got %s", items[0].Product.ID)
		}
	}
}

func TestApplyQuantityUnknownProductNoop(t *testing.T) {
	items := applyQuantity(cartFixture(), "missing", 3)
	if len(items) != 2 {
		t.Fatalf("expected unchanged cart, got %d items", len(items))
	}
}

func TestApplyQuantityNeverStoresZero(t *testing.T) {
	items := applyQuantity(cartFixture(), "b", 0)
	for _, item := range items {
		if item.Quantity < 1 {
			t.Fatalf("found stored quantity %d for %s", item.Quantity, item.Product.ID)
		}
	}
}
