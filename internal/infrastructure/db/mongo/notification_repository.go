package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/commercekit/customer-system/internal/core/domain"
)

const notificationsCollection = "notifications"

// NotificationRepository persists queued notifications to the outbox collection.
type NotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{coll: db.Collection(notificationsCollection)}
}

func (r *NotificationRepository) Insert(ctx context.Context, n *domain.Notification) error {
	doc := bson.M{
		"customer_id": n.CustomerID,
		"email":       n.Email,
		"firstname":   n.Firstname,
		"type":        n.Type,
		"store_id":    n.StoreID,
		"created_at":  n.CreatedAt,
		"sent":        false,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}
