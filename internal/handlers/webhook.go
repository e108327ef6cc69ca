package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/services"
)

/*
POST /api/webhook
- the only writer of new orders; authenticates its caller by signature
- missing or invalid Stripe-Signature → 400, nothing is persisted
- every recognized-or-ignored event is acknowledged with { received: true },
  the processor redelivers on anything else
*/
func HandleStripeWebhook(db *mongo.Database, mailer *services.Mailer, webhookSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/webhook"
		defer handlePanic(c, route)

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "failed to read body")
			return
		}

		signature := c.GetHeader("Stripe-Signature")
		if signature == "" {
			respondWithError(c, http.StatusBadRequest, route, "missing stripe-signature header")
			return
		}

		// The endpoint is internet-reachable; nothing in the payload is
		// trusted before this verification succeeds.
		event, err := webhook.ConstructEvent(body, signature, webhookSecret)
		if err != nil {
			log.Printf("[%s] signature verification failed: %v", route, err)
			respondWithError(c, http.StatusBadRequest, route, "invalid signature")
			return
		}

		switch event.Type {
		case "checkout.session.completed":
			var sess stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
				log.Printf("[%s] failed to decode session payload: %v", route, err)
				break
			}
			processCompletedCheckout(c.Request.Context(), db, mailer, &sess)

		case "payment_intent.payment_failed":
			var intent stripe.PaymentIntent
			if err := json.Unmarshal(event.Data.Raw, &intent); err == nil {
				log.Printf("[%s] payment failed: %s", route, intent.ID)
			}

		default:
			log.Printf("[%s] unhandled event type: %s", route, event.Type)
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

// processCompletedCheckout persists the order and sends the confirmation
// email. The payment has already been captured, so data gaps degrade to
// empty/nil instead of aborting, and failures past the insert are only
// logged.
func processCompletedCheckout(ctx context.Context, db *mongo.Database, mailer *services.Mailer, sess *stripe.CheckoutSession) {
	log.Printf("[WEBHOOK] payment successful: %s", sess.ID)

	orderNumber := database.NextOrderNumber(ctx, db)
	order := orderFromSession(sess, orderNumber, time.Now())

	opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := db.Collection("orders").InsertOne(opCtx, order)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Redelivered event; the first delivery already recorded it.
			log.Printf("[WEBHOOK] order for session %s already processed", sess.ID)
		} else {
			log.Printf("[WEBHOOK] database error: %v", err)
		}
		return
	}

	log.Printf("[WEBHOOK] order %s saved for session %s", order.OrderNumber, sess.ID)

	if order.CustomerEmail == "" {
		return
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}

	if err := mailer.SendOrderConfirmed(order); err != nil {
		log.Printf("[WEBHOOK] failed to send confirmation email: %v", err)
	}
}

// orderFromSession reconstructs the order from the processor's captured
// fields plus the metadata snapshot attached at session creation.
func orderFromSession(sess *stripe.CheckoutSession, orderNumber string, now time.Time) models.Order {
	customerEmail := ""
	customerName := "Customer"
	var billing *models.Address
	if sess.CustomerDetails != nil {
		if sess.CustomerDetails.Email != "" {
			customerEmail = sess.CustomerDetails.Email
		}
		if sess.CustomerDetails.Name != "" {
			customerName = sess.CustomerDetails.Name
		}
		billing = addressFromStripe(sess.CustomerDetails.Address)
	}

	items := parseItemsMetadata(sess.Metadata["items"])

	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	total := float64(sess.AmountTotal) / 100

	var shippingAddr *models.Address
	if sess.ShippingDetails != nil {
		shippingAddr = addressFromStripe(sess.ShippingDetails.Address)
	}

	return models.Order{
		OrderNumber:     orderNumber,
		StripeSessionID: sess.ID,
		CustomerEmail:   customerEmail,
		CustomerName:    customerName,
		Items:           items,
		Subtotal:        subtotal,
		Shipping:        reconcileShipping(total, subtotal),
		Total:           total,
		Status:          models.StatusConfirmed,
		ShippingAddress: shippingAddr,
		BillingAddress:  billing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// parseItemsMetadata decodes the line-item snapshot. A parse failure yields
// zero items rather than an error: the payment already succeeded and the
// order must be recorded regardless.
func parseItemsMetadata(raw string) []models.OrderItem {
	if raw == "" {
		return []models.OrderItem{}
	}

	var items []models.OrderItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("[WEBHOOK] failed to parse items metadata: %v", err)
		return []models.OrderItem{}
	}
	return items
}

func addressFromStripe(a *stripe.Address) *models.Address {
	if a == nil {
		return nil
	}
	return &models.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
