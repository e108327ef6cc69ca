package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// shippableCountries is the allow-list offered at checkout.
var shippableCountries = []string{"US", "CA", "GB", "AU", "DE", "FR", "IT", "ES", "NL", "BE"}

type checkoutProductRequest struct {
	ID           string  `json:"id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price"`
	PackageImage string  `json:"packageImage"`
}

type checkoutItemRequest struct {
	Product  checkoutProductRequest `json:"product" binding:"required"`
	Quantity int64                  `json:"quantity" binding:"required"`
}

type checkoutRequest struct {
	Items []checkoutItemRequest `json:"items"`
}

// orderItemSnapshot is the metadata copy of one cart line. Until the webhook
// fires this snapshot is the only record of what was purchased; the processor
// echoes back nothing richer than what we attach here.
type orderItemSnapshot struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

func checkoutSubtotal(items []checkoutItemRequest) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}
	return subtotal
}

func itemsMetadata(items []checkoutItemRequest) (string, error) {
	snapshots := make([]orderItemSnapshot, 0, len(items))
	for _, item := range items {
		snapshots = append(snapshots, orderItemSnapshot{
			ID:       item.Product.ID,
			Name:     item.Product.Name,
			Price:    item.Product.Price,
			Quantity: item.Quantity,
		})
	}

	data, err := json.Marshal(snapshots)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

/*
POST /api/checkout
- empty cart → 400
- response: { sessionId, url } pointing at the hosted payment page
- processor errors surface as a generic 500, the shopper retries manually
*/
func CreateCheckoutSession(stripeKey, appURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/checkout"
		defer handlePanic(c, route)

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if len(req.Items) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no items in cart")
			return
		}

		for _, item := range req.Items {
			if item.Quantity <= 0 {
				respondWithError(c, http.StatusBadRequest, route, "quantity must be greater than zero")
				return
			}
		}

		subtotal := checkoutSubtotal(req.Items)

		metadata, err := itemsMetadata(req.Items)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "failed to create checkout session")
			return
		}

		lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
		for _, item := range req.Items {
			productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(item.Product.Name),
			}
			if item.Product.PackageImage != "" {
				productData.Images = []*string{stripe.String(appURL + item.Product.PackageImage)}
			}

			lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String("usd"),
					UnitAmount:  stripe.Int64(toCents(item.Product.Price)),
					ProductData: productData,
				},
				Quantity: stripe.Int64(item.Quantity),
			})
		}

		stripe.Key = stripeKey

		params := &stripe.CheckoutSessionParams{
			Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
			LineItems:          lineItems,
			SuccessURL:         stripe.String(fmt.Sprintf("%s/checkout/success?session_id={CHECKOUT_SESSION_ID}", appURL)),
			CancelURL:          stripe.String(fmt.Sprintf("%s/checkout/cancel", appURL)),
			ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
				AllowedCountries: stripe.StringSlice(shippableCountries),
			},
			ShippingOptions: []*stripe.CheckoutSessionShippingOptionParams{
				shippingOptionParams(subtotal),
			},
			Metadata: map[string]string{"items": metadata},
		}

		sess, err := session.New(params)
		if err != nil {
			log.Printf("[%s] stripe session creation failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "failed to create checkout session")
			return
		}

		c.JSON(http.StatusOK, gin.H{"sessionId": sess.ID, "url": sess.URL})
	}
}

// shippingOptionParams expresses the two-tier shipping rule as a named option
// so the customer sees "Free Shipping" or "Standard Shipping" explicitly.
func shippingOptionParams(subtotal float64) *stripe.CheckoutSessionShippingOptionParams {
	return &stripe.CheckoutSessionShippingOptionParams{
		ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
			Type: stripe.String("fixed_amount"),
			FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
				Amount:   stripe.Int64(shippingCostCents(subtotal)),
				Currency: stripe.String("usd"),
			},
			DisplayName: stripe.String(shippingDisplayName(subtotal)),
			DeliveryEstimate: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateParams{
				Minimum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMinimumParams{
					Unit:  stripe.String("business_day"),
					Value: stripe.Int64(5),
				},
				Maximum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMaximumParams{
					Unit:  stripe.String("business_day"),
					Value: stripe.Int64(7),
				},
			},
		},
	}
}
