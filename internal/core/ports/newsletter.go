package ports

import "context"

// NewsletterManager handles notification-list enrollment keyed by customer id.
type NewsletterManager interface {
	SetSubscribed(ctx context.Context, customerID int64, subscribed bool) error
	IsSubscribed(ctx context.Context, customerID int64) (bool, error)
}
