package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/commercekit/customer-system/internal/api/metrics"
)

const subscribersCollection = "newsletter_subscribers"

const (
	subscriberStatusSubscribed   = "subscribed"
	subscriberStatusUnsubscribed = "unsubscribed"
)

// SubscriberRepository implements ports.NewsletterManager on the
// newsletter_subscribers collection, one document per customer.
type SubscriberRepository struct {
	coll *mongo.Collection
}

func NewSubscriberRepository(db *mongo.Database) *SubscriberRepository {
	return &SubscriberRepository{coll: db.Collection(subscribersCollection)}
}

func (r *SubscriberRepository) SetSubscribed(ctx context.Context, customerID int64, subscribed bool) error {
	status := subscriberStatusUnsubscribed
	if subscribed {
		status = subscriberStatusSubscribed
	}

	now := time.Now().UTC().Unix()
	filter := bson.M{"customer_id": customerID}
	update := bson.M{
		"$set":         bson.M{"status": status, "updated_at": now},
		"$setOnInsert": bson.M{"customer_id": customerID, "created_at": now},
	}

	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("set newsletter status: %w", err)
	}

	metrics.NewsletterSubscriptionsTotal.WithLabelValues(status).Inc()
	return nil
}

func (r *SubscriberRepository) IsSubscribed(ctx context.Context, customerID int64) (bool, error) {
	var doc struct {
		Status string `bson:"status"`
	}
	err := r.coll.FindOne(ctx, bson.M{"customer_id": customerID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find newsletter status: %w", err)
	}
	return doc.Status == subscriberStatusSubscribed, nil
}
