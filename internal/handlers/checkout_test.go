package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCheckoutRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/checkout", CreateCheckoutSession("sk_test_unused", "http://localhost:8080"))
	return r
}

func TestCheckoutSubtotal(t *testing.T) {
	items := []checkoutItemRequest{
		{Product: checkoutProductRequest{ID: "a", Name: "A", Price: 12.00}, Quantity: 2},
		{Product: checkoutProductRequest{ID: "b", Name: "B", Price: 30.00}, Quantity: 1},
	}
	if got := checkoutSubtotal(items); got != 54.00 {
		t.Fatalf("expected subtotal 54.00, got %v", got)
	}
	if !qualifiesForFreeShipping(checkoutSubtotal(items)) {
		t.Fatal("expected cart at 54.00 to qualify for free shipping")
	}
}

func TestItemsMetadataSnapshot(t *testing.T) {
	items := []checkoutItemRequest{
		{Product: checkoutProductRequest{ID: "granola-cocoa", Name: "Cocoa Granola", Price: 12.00, PackageImage: "/img.png"}, Quantity: 2},
	}

	raw, err := itemsMetadata(items)
	if err != nil {
		t.Fatalf("itemsMetadata returned error: %v", err)
	}

	var snapshots []orderItemSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshots); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snapshots))
	}
	if snapshots[0].ID != "granola-cocoa" || snapshots[0].Price != 12.00 || snapshots[0].Quantity != 2 {
		t.Fatalf("unexpected snapshot contents: %+v", snapshots[0])
	}
	// The image is display-only and must not leak into the purchase record.
	if strings.Contains(raw, "img.png") {
		t.Fatalf("expected snapshot without image data, got %s", raw)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	r := newCheckoutRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"items":[]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", w.Code)
	}
}

func TestCheckoutRejectsNonPositiveQuantity(t *testing.T) {
	r := newCheckoutRouter()

	body := `{"items":[{"product":{"id":"a","name":"A","price":5},"quantity":-1}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative quantity, got %d", w.Code)
	}
}

func TestCheckoutRejectsInvalidBody(t *testing.T) {
	r := newCheckoutRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid body, got %d", w.Code)
	}
}
