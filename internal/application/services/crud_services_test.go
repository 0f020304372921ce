package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagosclm/pagos-service/internal/application/services"
	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/infrastructure/persistence/memory"
)

func TestUserService_CRUD(t *testing.T) {
	ctx := context.Background()
	service := services.NewUserService(memory.NewUserStore())

	user, err := service.Save(ctx, &domain.User{Name: "Ana Silva", Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)

	found, err := service.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", found.Name)
	assert.Equal(t, "ana@example.com", found.Email)

	all, err := service.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, service.DeleteByID(ctx, user.ID))

	_, err = service.GetByID(ctx, user.ID)
	assert.True(t, domain.IsNotFound(err))

	// deleting again is a no-op
	assert.NoError(t, service.DeleteByID(ctx, user.ID))
}

func TestNotificationService_CRUD(t *testing.T) {
	ctx := context.Background()
	service := services.NewNotificationService(memory.NewNotificationStore())

	notification, err := service.Save(ctx, &domain.Notification{
		Type:            "PAGO_APROBADO",
		Message:         "Su pago fue aprobado",
		SentAt:          time.Now(),
		RecipientUserID: uuid.New(),
	})
	require.NoError(t, err)

	found, err := service.GetByID(ctx, notification.ID)
	require.NoError(t, err)
	assert.Equal(t, "PAGO_APROBADO", found.Type)

	require.NoError(t, service.DeleteByID(ctx, notification.ID))

	all, err := service.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestTransactionService_QueryStatus(t *testing.T) {
	ctx := context.Background()
	service := services.NewTransactionService(memory.NewTransactionStore(), &MockWebpayClient{})

	transactionID := uuid.New()
	transaction, err := service.QueryStatus(ctx, transactionID)

	require.NoError(t, err)
	assert.Equal(t, transactionID, transaction.ID)
	assert.Equal(t, domain.StatusAprobado, transaction.Status)

	// the query result is not written back to the store
	_, err = service.GetByID(ctx, transactionID)
	assert.True(t, domain.IsNotFound(err))
}

func TestTransactionService_CRUD(t *testing.T) {
	ctx := context.Background()
	service := services.NewTransactionService(memory.NewTransactionStore(), &MockWebpayClient{})

	transaction, err := service.Save(ctx, &domain.Transaction{
		Status:       domain.StatusAprobado,
		Provider:     domain.ProviderWebpayPlus,
		TransactedAt: time.Now(),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, transaction.ID)

	found, err := service.GetByID(ctx, transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderWebpayPlus, found.Provider)

	require.NoError(t, service.DeleteByID(ctx, transaction.ID))
	assert.NoError(t, service.DeleteByID(ctx, transaction.ID))
}
