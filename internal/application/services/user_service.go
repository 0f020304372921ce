package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/pagosclm/pagos-service/internal/application"
	"github.com/pagosclm/pagos-service/internal/domain"
)

type UserService struct {
	userStore application.UserStore
}

func NewUserService(userStore application.UserStore) *UserService {
	return &UserService{userStore: userStore}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userStore.FindByID(ctx, id)
}

func (s *UserService) FindAll(ctx context.Context) ([]*domain.User, error) {
	return s.userStore.FindAll(ctx)
}

func (s *UserService) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.userStore.Save(ctx, user)
}

func (s *UserService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.userStore.DeleteByID(ctx, id)
}
