package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/commercekit/customer-system/internal/core/domain"
	"github.com/commercekit/customer-system/internal/core/ports"
)

type notificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

// NewNotificationService returns a NotificationService that records welcome
// notifications in the outbox collection for the mailer to pick up.
func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, log: log}
}

func (s *notificationService) Process(ctx context.Context, in ports.WelcomeNotificationInput) error {
	n := &domain.Notification{
		CustomerID: in.CustomerID,
		Email:      in.Email,
		Firstname:  in.Firstname,
		Type:       domain.NotificationCustomerWelcome,
		StoreID:    in.StoreID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		return fmt.Errorf("record welcome notification: %w", err)
	}

	s.log.Info().
		Int64("customer_id", in.CustomerID).
		Str("type", n.Type).
		Msg("welcome notification queued")

	return nil
}
