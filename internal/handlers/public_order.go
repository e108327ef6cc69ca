package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/models"
)

/*
GET /orders/by-session/:sessionId
- narrow projection for the post-checkout confirmation page
- no match → 404; the page shows a "processing" notice while the webhook
  hasn't landed yet
*/
func GetOrderBySession(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/by-session/:sessionId"
		defer handlePanic(c, route)

		sessionID := strings.TrimSpace(c.Param("sessionId"))
		if sessionID == "" {
			respondWithError(c, http.StatusBadRequest, route, "session id required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var summary models.OrderSummary
		err := db.Collection("orders").FindOne(
			ctx,
			bson.M{"stripeSessionId": sessionID},
		).Decode(&summary)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": summary})
	}
}
