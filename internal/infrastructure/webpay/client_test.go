package webpay_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/infrastructure/webpay"
)

func TestClient_ProcessTransaction(t *testing.T) {
	client := webpay.NewClient()
	amount := decimal.RequireFromString("5000.00")

	transaction, err := client.ProcessTransaction(context.Background(), uuid.New(), amount)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, transaction.ID)
	assert.Equal(t, domain.StatusAprobado, transaction.Status)
	assert.Equal(t, domain.ProviderWebpayPlus, transaction.Provider)
	assert.Nil(t, transaction.ErrorDetail)
	assert.True(t, transaction.Amount.Equal(amount))
	assert.WithinDuration(t, time.Now(), transaction.TransactedAt, time.Minute)
}

func TestClient_ProcessTransaction_FreshIDs(t *testing.T) {
	client := webpay.NewClient()
	orderID := uuid.New()

	first, err := client.ProcessTransaction(context.Background(), orderID, decimal.NewFromInt(100))
	require.NoError(t, err)
	second, err := client.ProcessTransaction(context.Background(), orderID, decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestClient_RequestRefund(t *testing.T) {
	client := webpay.NewClient()
	paymentID := uuid.New()
	amount := decimal.NewFromInt(750)

	refund, err := client.RequestRefund(context.Background(), paymentID, amount)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, refund.ID)
	assert.Equal(t, paymentID, refund.PaymentID)
	assert.Equal(t, domain.RefundStatusPendiente, refund.Status)
	assert.True(t, refund.Amount.Equal(amount))
	assert.WithinDuration(t, time.Now(), refund.RequestedAt, time.Minute)
}

func TestClient_QueryTransactionStatus(t *testing.T) {
	client := webpay.NewClient()
	transactionID := uuid.New()

	transaction, err := client.QueryTransactionStatus(context.Background(), transactionID)

	require.NoError(t, err)
	assert.Equal(t, transactionID, transaction.ID)
	assert.Equal(t, domain.StatusAprobado, transaction.Status)
	assert.Equal(t, domain.ProviderWebpayPlus, transaction.Provider)
	assert.WithinDuration(t, time.Now().Add(-5*time.Minute), transaction.TransactedAt, time.Minute)
}
