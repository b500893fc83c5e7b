package ports

import (
	"context"

	"github.com/commercekit/customer-system/internal/core/domain"
)

// WelcomeNotificationInput is the DTO handed to the notification worker after a
// successful registration.
type WelcomeNotificationInput struct {
	CustomerID int64
	Email      string
	Firstname  string
	StoreID    int64
}

// NotificationService processes queued storefront notifications.
type NotificationService interface {
	Process(ctx context.Context, in WelcomeNotificationInput) error
}

// NotificationRepository persists notifications to the outbox collection.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
}
