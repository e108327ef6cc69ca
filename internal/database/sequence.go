package database

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const orderNumberPrefix = "UGO-"

// orderNumberSeed keeps early sequence values six digits wide.
const orderNumberSeed = 100000

// NextOrderNumber allocates a human-facing order code from an atomic counter.
// findOneAndUpdate with $inc is safe under concurrent webhook deliveries; the
// counter document, not the caller, guarantees uniqueness. When the counter is
// unreachable it falls back to a timestamp+random composite, which is not
// collision-proof (see DESIGN.md).
func NextOrderNumber(ctx context.Context, db *mongo.Database) string {
	opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result := db.Collection("counters").FindOneAndUpdate(
		opCtx,
		bson.M{"_id": "order_number"},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	)

	var counter struct {
		Value int64 `bson:"value"`
	}
	if err := result.Decode(&counter); err != nil {
		return fallbackOrderNumber(time.Now())
	}

	return fmt.Sprintf("%s%d", orderNumberPrefix, orderNumberSeed+counter.Value)
}

// fallbackOrderNumber builds a timestamp+random code for when the counter is
// unavailable. Collisions are theoretically possible; the unique index on
// orderNumber rejects them at insert time.
func fallbackOrderNumber(now time.Time) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	timestamp := fmt.Sprintf("%d", now.UnixMilli())
	if len(timestamp) > 6 {
		timestamp = timestamp[len(timestamp)-6:]
	}

	var random strings.Builder
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			random.WriteByte('X')
			continue
		}
		random.WriteByte(alphabet[n.Int64()])
	}

	return orderNumberPrefix + timestamp + random.String()
}
