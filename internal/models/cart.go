package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem pairs a product snapshot with a quantity. A cart holds at most one
// item per product id and stored quantities are always >= 1; quantity zero
// means removal, never a stored zero.
type CartItem struct {
	Product  Product `bson:"product" json:"product"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Cart is one shopper's selection, keyed by a session cookie and mirrored to
// durable storage on every mutation.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SessionID string             `bson:"sessionId" json:"-"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"-"`
}
