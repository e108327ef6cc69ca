package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureOrderIndexes creates the unique constraints duplicate-order prevention
// depends on. A redelivered webhook relies on stripeSessionId_unique rejecting
// the second insert; the handler itself performs no locking.
func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	sessionIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "stripeSessionId", Value: 1}},
		Options: options.Index().
			SetName("stripeSessionId_unique").
			SetUnique(true),
	}

	orderNumberIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "orderNumber", Value: 1}},
		Options: options.Index().
			SetName("orderNumber_unique").
			SetUnique(true),
	}

	log.Println("EnsureOrderIndexes: creating order indexes")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{sessionIndex, orderNumberIndex})
	if err != nil {
		log.Println("EnsureOrderIndexes: index error:", err)
		return err
	}
	log.Println("EnsureOrderIndexes: order indexes created")
	return nil
}

// EnsureCartIndexes keys carts by the shopper's session cookie so every
// mutation replaces a single document.
func EnsureCartIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("carts").Indexes()

	sessionIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "sessionId", Value: 1}},
		Options: options.Index().
			SetName("sessionId_unique").
			SetUnique(true),
	}

	log.Println("EnsureCartIndexes: creating sessionId_unique index")
	_, err := indexes.CreateOne(ctx, sessionIndex)
	if err != nil {
		log.Println("EnsureCartIndexes: sessionId index error:", err)
		return err
	}
	log.Println("EnsureCartIndexes: sessionId_unique index created")
	return nil
}
