package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the closed set of fulfillment states an order moves through.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

// ParseOrderStatus validates a raw status value against the enumeration.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered:
		return OrderStatus(raw), true
	}
	return "", false
}

// CanTransition reports whether an order may advance from one status to the
// next. Transitions only move forward one step; jumps and reversals are
// rejected.
func CanTransition(from, to OrderStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed
	case StatusConfirmed:
		return to == StatusShipped
	case StatusShipped:
		return to == StatusDelivered
	}
	return false
}

// OrderItem is a frozen copy of one cart line at payment time, not a live
// reference to the catalog.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Address holds the postal address captured by the payment processor.
type Address struct {
	Line1      string `bson:"line1" json:"line1"`
	Line2      string `bson:"line2,omitempty" json:"line2,omitempty"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postalCode" json:"postal_code"`
	Country    string `bson:"country" json:"country"`
}

// Order is the persisted order document. Created only by the webhook handler
// after a verified payment completion; never deleted.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber     string             `bson:"orderNumber" json:"order_number"`
	StripeSessionID string             `bson:"stripeSessionId" json:"stripe_session_id"`
	CustomerEmail   string             `bson:"customerEmail" json:"customer_email"`
	CustomerName    string             `bson:"customerName" json:"customer_name"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	Shipping        float64            `bson:"shipping" json:"shipping"`
	Total           float64            `bson:"total" json:"total"`
	Status          OrderStatus        `bson:"status" json:"status"`
	TrackingNumber  *string            `bson:"trackingNumber,omitempty" json:"tracking_number"`
	ShippingAddress *Address           `bson:"shippingAddress,omitempty" json:"shipping_address"`
	BillingAddress  *Address           `bson:"billingAddress,omitempty" json:"billing_address"`
	CreatedAt       time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updated_at"`
}

// OrderSummary is the narrow projection returned to customers on the
// post-checkout confirmation page.
type OrderSummary struct {
	OrderNumber   string      `bson:"orderNumber" json:"order_number"`
	CustomerName  string      `bson:"customerName" json:"customer_name"`
	CustomerEmail string      `bson:"customerEmail" json:"customer_email"`
	Total         float64     `bson:"total" json:"total"`
	Status        OrderStatus `bson:"status" json:"status"`
}
