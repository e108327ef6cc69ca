package services

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/internal/models"
)

func orderFixture() models.Order {
	return models.Order{
		ID:            primitive.NewObjectID(),
		OrderNumber:   "UGO-100042",
		CustomerEmail: "jo@example.com",
		CustomerName:  "Jo",
		Items: []models.OrderItem{
			{ProductID: "a", Name: "Cocoa Granola", Price: 12.00, Quantity: 2},
		},
		Subtotal: 24.00,
		Shipping: 7.00,
		Total:    31.00,
		Status:   models.StatusConfirmed,
	}
}

func TestDisabledMailerSwallowsSends(t *testing.T) {
	mailer := NewMailer("smtp.example.com", 587, "", "", "Shop <orders@example.com>", "http://localhost:8080")

	if err := mailer.SendOrderConfirmed(orderFixture()); err != nil {
		t.Fatalf("disabled mailer returned error: %v", err)
	}
}

func TestSendRejectsEmptyRecipient(t *testing.T) {
	mailer := NewMailer("smtp.example.com", 587, "", "", "Shop <orders@example.com>", "http://localhost:8080")

	order := orderFixture()
	order.CustomerEmail = ""
	if err := mailer.SendOrderConfirmed(order); err == nil {
		t.Fatal("expected error for empty recipient")
	}
}

func TestOrderConfirmedBodyContents(t *testing.T) {
	body := orderConfirmedBody(orderFixture())

	for _, want := range []string{"UGO-100042", "Jo", "Cocoa Granola", "Qty: 2", "$24.00", "$7.00", "$31.00"} {
		if !strings.Contains(body, want) {
			t.Fatalf("confirmed body missing %q", want)
		}
	}
}

func TestOrderConfirmedBodyShowsFreeShipping(t *testing.T) {
	order := orderFixture()
	order.Shipping = 0
	order.Total = order.Subtotal

	body := orderConfirmedBody(order)
	if !strings.Contains(body, "FREE") {
		t.Fatal("expected FREE label for zero shipping")
	}
}

func TestOrderShippedBodyIncludesTracking(t *testing.T) {
	order := orderFixture()
	tracking := "1Z999AA10123456784"
	order.TrackingNumber = &tracking
	order.ShippingAddress = &models.Address{
		Line1: "2 Shipping St", City: "Austin", State: "TX", PostalCode: "78702", Country: "US",
	}

	body := orderShippedBody(order)
	if !strings.Contains(body, tracking) {
		t.Fatal("shipped body missing tracking number")
	}
	if !strings.Contains(body, "2 Shipping St") {
		t.Fatal("shipped body missing shipping address")
	}
}

func TestOrderShippedBodyWithoutTracking(t *testing.T) {
	body := orderShippedBody(orderFixture())
	if strings.Contains(body, "TRACKING NUMBER") {
		t.Fatal("expected no tracking section when tracking number is unset")
	}
}

func TestOrderDeliveredBodyLinksShop(t *testing.T) {
	body := orderDeliveredBody(orderFixture(), "https://shop.example.com")
	if !strings.Contains(body, "https://shop.example.com/shop") {
		t.Fatal("delivered body missing shop link")
	}
}

func TestDisplayOrderNumberFallsBackToID(t *testing.T) {
	order := orderFixture()
	order.OrderNumber = ""

	got := displayOrderNumber(order)
	if got == "N/A" || got == "" {
		t.Fatalf("expected id-derived fallback, got %q", got)
	}
	hex := order.ID.Hex()
	if !strings.EqualFold(got, hex[len(hex)-8:]) {
		t.Fatalf("expected last 8 of id, got %q", got)
	}
}
