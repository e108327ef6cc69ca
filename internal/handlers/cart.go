package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

const cartSessionCookie = "cart_session"

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type setCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

/*
GET /api/cart
- rehydrates the shopper's cart from storage
- storage miss, corruption or unavailability → empty cart, never an error
*/
func GetCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := cartSessionID(c)
		cart := loadCart(c.Request.Context(), db, sessionID)
		c.JSON(http.StatusOK, gin.H{"items": cart.Items})
	}
}

// POST /api/cart/items
func AddCartItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/cart/items"
		defer handlePanic(c, route)

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		product, ok := catalog.ByID(req.ProductID)
		if !ok {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		sessionID := cartSessionID(c)
		cart := loadCart(c.Request.Context(), db, sessionID)

		found := false
		for i := range cart.Items {
			if cart.Items[i].Product.ID == product.ID {
				cart.Items[i].Quantity++
				found = true
				break
			}
		}
		if !found {
			cart.Items = append(cart.Items, models.CartItem{Product: product, Quantity: 1})
		}

		persistCart(c.Request.Context(), db, &cart)
		c.JSON(http.StatusOK, gin.H{"items": cart.Items})
	}
}

/*
PUT /api/cart/items/:productId
- quantity <= 0 behaves exactly like remove, a zero is never stored
*/
func SetCartQuantity(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/cart/items/:productId"
		defer handlePanic(c, route)

		var req setCartQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		sessionID := cartSessionID(c)
		cart := loadCart(c.Request.Context(), db, sessionID)
		cart.Items = applyQuantity(cart.Items, c.Param("productId"), req.Quantity)

		persistCart(c.Request.Context(), db, &cart)
		c.JSON(http.StatusOK, gin.H{"items": cart.Items})
	}
}

// DELETE /api/cart/items/:productId
func RemoveCartItem(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := cartSessionID(c)
		cart := loadCart(c.Request.Context(), db, sessionID)
		cart.Items = applyQuantity(cart.Items, c.Param("productId"), 0)

		persistCart(c.Request.Context(), db, &cart)
		c.JSON(http.StatusOK, gin.H{"items": cart.Items})
	}
}

// DELETE /api/cart — invoked after a successful checkout redirect.
func ClearCart(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := cartSessionID(c)
		cart := models.Cart{SessionID: sessionID, Items: []models.CartItem{}}

		persistCart(c.Request.Context(), db, &cart)
		c.JSON(http.StatusOK, gin.H{"items": cart.Items})
	}
}

// applyQuantity overwrites one item's quantity, removing the entry when the
// quantity drops to zero or below. Unknown product ids are a no-op.
func applyQuantity(items []models.CartItem, productID string, quantity int) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			out = append(out, item)
			continue
		}
		if quantity <= 0 {
			continue
		}
		item.Quantity = quantity
		out = append(out, item)
	}
	return out
}

// loadCart fails open: any read or decode error yields an empty cart so the
// storefront keeps working when storage is unavailable.
func loadCart(ctx context.Context, db *mongo.Database, sessionID string) models.Cart {
	opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cart models.Cart
	err := db.Collection("carts").FindOne(opCtx, bson.M{"sessionId": sessionID}).Decode(&cart)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("[CART] load failed for session %s: %v", sessionID, err)
		}
		return models.Cart{SessionID: sessionID, Items: []models.CartItem{}, CreatedAt: time.Now()}
	}

	cart.SessionID = sessionID
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart
}

// persistCart mirrors the cart to storage after every mutation. A write
// failure is logged and swallowed, persistence is best effort.
func persistCart(ctx context.Context, db *mongo.Database, cart *models.Cart) {
	opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cart.UpdatedAt = time.Now()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = cart.UpdatedAt
	}

	_, err := db.Collection("carts").UpdateOne(
		opCtx,
		bson.M{"sessionId": cart.SessionID},
		bson.M{"$set": bson.M{
			"items":     cart.Items,
			"updatedAt": cart.UpdatedAt,
			"createdAt": cart.CreatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("[CART] persist failed for session %s: %v", cart.SessionID, err)
	}
}

// cartSessionID reads the session cookie, minting a new one on first visit.
func cartSessionID(c *gin.Context) string {
	if cookie, err := c.Cookie(cartSessionCookie); err == nil && cookie != "" {
		return cookie
	}

	sessionID := uuid.New().String()
	c.SetCookie(cartSessionCookie, sessionID, 86400*30, "/", "", false, true)
	return sessionID
}
