package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/infrastructure/persistence/memory"
)

func TestPaymentStore_SaveAssignsID(t *testing.T) {
	store := memory.NewPaymentStore()

	payment, err := store.Save(context.Background(), &domain.Payment{
		Amount: decimal.NewFromInt(100),
		Status: domain.StatusProcesando,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, payment.ID)
}

func TestPaymentStore_SaveKeepsExistingID(t *testing.T) {
	store := memory.NewPaymentStore()
	id := uuid.New()

	payment, err := store.Save(context.Background(), &domain.Payment{ID: id})

	require.NoError(t, err)
	assert.Equal(t, id, payment.ID)
}

func TestPaymentStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPaymentStore()

	original := &domain.Payment{
		Amount:        decimal.RequireFromString("99.90"),
		Status:        domain.StatusAprobado,
		PaidAt:        time.Now(),
		OrderID:       uuid.New(),
		UserID:        uuid.New(),
		TransactionID: uuid.New(),
	}
	saved, err := store.Save(ctx, original)
	require.NoError(t, err)

	found, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, found)
}

func TestPaymentStore_FindByID_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPaymentStore()

	saved, err := store.Save(ctx, &domain.Payment{Status: domain.StatusProcesando})
	require.NoError(t, err)

	found, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	found.Status = "MUTATED"

	again, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcesando, again.Status)
}

func TestPaymentStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	store := memory.NewPaymentStore()

	saved, err := store.Save(ctx, &domain.Payment{Status: domain.StatusProcesando})
	require.NoError(t, err)

	saved.Status = domain.StatusAprobado
	_, err = store.Save(ctx, saved)
	require.NoError(t, err)

	found, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAprobado, found.Status)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPaymentStore_FindByID_Missing(t *testing.T) {
	store := memory.NewPaymentStore()

	_, err := store.FindByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestPaymentStore_FindAll_EmptyIsNonNil(t *testing.T) {
	store := memory.NewPaymentStore()

	all, err := store.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestPaymentStore_DeleteByID_UnknownIsNoop(t *testing.T) {
	store := memory.NewPaymentStore()
	assert.NoError(t, store.DeleteByID(context.Background(), uuid.New()))
}

func TestRefundStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRefundStore()

	reason := "producto defectuoso"
	saved, err := store.Save(ctx, &domain.Refund{
		PaymentID:   uuid.New(),
		Amount:      decimal.NewFromInt(500),
		Status:      domain.RefundStatusPendiente,
		RequestedAt: time.Now(),
		Reason:      &reason,
	})
	require.NoError(t, err)

	found, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, found)
}

func TestUserStore_DeleteRemoves(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()

	saved, err := store.Save(ctx, &domain.User{Name: "Luis", Email: "luis@example.com"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteByID(ctx, saved.ID))

	_, err = store.FindByID(ctx, saved.ID)
	assert.True(t, domain.IsNotFound(err))
}
