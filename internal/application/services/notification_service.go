package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/pagosclm/pagos-service/internal/application"
	"github.com/pagosclm/pagos-service/internal/domain"
)

type NotificationService struct {
	notificationStore application.NotificationStore
}

func NewNotificationService(notificationStore application.NotificationStore) *NotificationService {
	return &NotificationService{notificationStore: notificationStore}
}

func (s *NotificationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	return s.notificationStore.FindByID(ctx, id)
}

func (s *NotificationService) FindAll(ctx context.Context) ([]*domain.Notification, error) {
	return s.notificationStore.FindAll(ctx)
}

func (s *NotificationService) Save(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	return s.notificationStore.Save(ctx, notification)
}

func (s *NotificationService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.notificationStore.DeleteByID(ctx, id)
}
