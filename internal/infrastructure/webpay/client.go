// Package webpay is a stand-in for the Webpay Plus payment processor. The
// real integration never existed; this client fabricates approved results
// with fresh identifiers and current timestamps and never fails.
package webpay

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pagosclm/pagos-service/internal/application"
	"github.com/pagosclm/pagos-service/internal/domain"
)

type Client struct{}

func NewClient() application.WebpayClient {
	return &Client{}
}

// ProcessTransaction fabricates an approved transaction for the order. It
// only constructs the record; persisting it is the caller's job.
func (c *Client) ProcessTransaction(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*domain.Transaction, error) {
	return &domain.Transaction{
		ID:           uuid.New(),
		Status:       domain.StatusAprobado,
		Provider:     domain.ProviderWebpayPlus,
		ErrorDetail:  nil,
		Amount:       amount,
		TransactedAt: time.Now(),
	}, nil
}

// RequestRefund fabricates a pending refund for the payment.
func (c *Client) RequestRefund(ctx context.Context, paymentID uuid.UUID, amount decimal.Decimal) (*domain.Refund, error) {
	return &domain.Refund{
		ID:          uuid.New(),
		PaymentID:   paymentID,
		Amount:      amount,
		Status:      domain.RefundStatusPendiente,
		RequestedAt: time.Now(),
	}, nil
}

// QueryTransactionStatus fabricates an approved transaction dated five
// minutes in the past, as if it had settled recently.
func (c *Client) QueryTransactionStatus(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error) {
	return &domain.Transaction{
		ID:           transactionID,
		Status:       domain.StatusAprobado,
		Provider:     domain.ProviderWebpayPlus,
		ErrorDetail:  nil,
		TransactedAt: time.Now().Add(-5 * time.Minute),
	}, nil
}
