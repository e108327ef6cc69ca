package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/models"
	"storefront/internal/services"
)

type updateOrderRequest struct {
	Status         *string `json:"status"`
	TrackingNumber *string `json:"tracking_number"`
}

/*
GET /admin/api/orders
- all orders, newest first
- page + limit OPTIONAL → without them, the full list
- malformed rows are skipped, never fail the whole list
*/
func GetAdminOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders"
		defer handlePanic(c, route)

		findOptions := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}

			findOptions.
				SetSkip((page - 1) * limit).
				SetLimit(limit)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "orders could not be fetched")
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		for cursor.Next(ctx) {
			var order models.Order
			if err := cursor.Decode(&order); err != nil {
				log.Printf("[%s] skipping malformed order row: %v", route, err)
				continue
			}
			if order.ID.IsZero() {
				log.Printf("[%s] skipping order row without identifier", route)
				continue
			}
			orders = append(orders, order)
		}
		if err := cursor.Err(); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "orders could not be fetched")
			return
		}

		log.Printf("[%s] returning %d orders", route, len(orders))
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

/*
PATCH /admin/api/orders/:id
- status must belong to the enumeration and advance exactly one step along
  pending → confirmed → shipped → delivered
- tracking_number stored as sent; updated_at always refreshed
- shipped / delivered transitions dispatch the matching email, best effort
*/
func UpdateAdminOrder(db *mongo.Database, mailer *services.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/api/orders/:id"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req updateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if req.Status == nil && req.TrackingNumber == nil {
			respondWithError(c, http.StatusBadRequest, route, "nothing to update")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var current models.Order
		err = db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&current)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		update := bson.M{"updatedAt": time.Now()}

		var newStatus models.OrderStatus
		if req.Status != nil {
			status, ok := models.ParseOrderStatus(*req.Status)
			if !ok {
				respondWithError(c, http.StatusBadRequest, route, "invalid status")
				return
			}
			if !models.CanTransition(current.Status, status) {
				respondWithError(c, http.StatusBadRequest, route, "illegal status transition")
				return
			}
			newStatus = status
			update["status"] = status
		}

		if req.TrackingNumber != nil {
			update["trackingNumber"] = *req.TrackingNumber
		}

		var updated models.Order
		err = db.Collection("orders").FindOneAndUpdate(
			ctx,
			bson.M{"_id": orderID},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		// The order row is already durable; a failed notification never
		// fails the admin request.
		switch newStatus {
		case models.StatusShipped:
			if err := mailer.SendOrderShipped(updated); err != nil {
				log.Printf("[%s] failed to send shipped email: %v", route, err)
			}
		case models.StatusDelivered:
			if err := mailer.SendOrderDelivered(updated); err != nil {
				log.Printf("[%s] failed to send delivered email: %v", route, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"order": updated})
	}
}
