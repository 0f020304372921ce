package services_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pagosclm/pagos-service/internal/application"
	"github.com/pagosclm/pagos-service/internal/domain"
)

// MockWebpayClient mimics the gateway stub but lets a test override any
// operation through the Fn fields.
type MockWebpayClient struct {
	ProcessTransactionFn     func(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*domain.Transaction, error)
	RequestRefundFn          func(ctx context.Context, paymentID uuid.UUID, amount decimal.Decimal) (*domain.Refund, error)
	QueryTransactionStatusFn func(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error)

	ProcessTransactionCalls int
	RequestRefundCalls      int
}

func (m *MockWebpayClient) ProcessTransaction(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*domain.Transaction, error) {
	m.ProcessTransactionCalls++
	if m.ProcessTransactionFn != nil {
		return m.ProcessTransactionFn(ctx, orderID, amount)
	}
	return &domain.Transaction{
		ID:           uuid.New(),
		Status:       domain.StatusAprobado,
		Provider:     domain.ProviderWebpayPlus,
		Amount:       amount,
		TransactedAt: time.Now(),
	}, nil
}

func (m *MockWebpayClient) RequestRefund(ctx context.Context, paymentID uuid.UUID, amount decimal.Decimal) (*domain.Refund, error) {
	m.RequestRefundCalls++
	if m.RequestRefundFn != nil {
		return m.RequestRefundFn(ctx, paymentID, amount)
	}
	return &domain.Refund{
		ID:          uuid.New(),
		PaymentID:   paymentID,
		Amount:      amount,
		Status:      domain.RefundStatusPendiente,
		RequestedAt: time.Now(),
	}, nil
}

func (m *MockWebpayClient) QueryTransactionStatus(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error) {
	if m.QueryTransactionStatusFn != nil {
		return m.QueryTransactionStatusFn(ctx, transactionID)
	}
	return &domain.Transaction{
		ID:           transactionID,
		Status:       domain.StatusAprobado,
		Provider:     domain.ProviderWebpayPlus,
		TransactedAt: time.Now().Add(-5 * time.Minute),
	}, nil
}

// spyPaymentStore wraps a PaymentStore and counts writes, so tests can
// assert that silent-miss updates never touch the store.
type spyPaymentStore struct {
	application.PaymentStore
	SaveCalls int
}

func (s *spyPaymentStore) Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	s.SaveCalls++
	return s.PaymentStore.Save(ctx, payment)
}
