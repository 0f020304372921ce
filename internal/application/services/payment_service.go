// Package services implements the lifecycle orchestration for each business
// operation. Services hold no state beyond their store and gateway handles;
// infrastructure failures propagate to the caller unhandled.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pagosclm/pagos-service/internal/application"
	"github.com/pagosclm/pagos-service/internal/domain"
)

type PaymentService struct {
	paymentStore     application.PaymentStore
	transactionStore application.TransactionStore
	webpay           application.WebpayClient
	logger           *slog.Logger
}

func NewPaymentService(
	paymentStore application.PaymentStore,
	transactionStore application.TransactionStore,
	webpay application.WebpayClient,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		paymentStore:     paymentStore,
		transactionStore: transactionStore,
		webpay:           webpay,
		logger:           logger,
	}
}

// ProcessPayment charges an order through the gateway and records the result.
// The transaction is persisted before the payment; there is no rollback if
// the payment write fails after the transaction write succeeded.
func (s *PaymentService) ProcessPayment(ctx context.Context, orderID, userID uuid.UUID, amount decimal.Decimal) (*domain.Payment, error) {
	transaction, err := s.webpay.ProcessTransaction(ctx, orderID, amount)
	if err != nil {
		return nil, fmt.Errorf("gateway transaction: %w", err)
	}

	transaction, err = s.transactionStore.Save(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("save transaction: %w", err)
	}

	payment := &domain.Payment{
		OrderID:       orderID,
		UserID:        userID,
		Amount:        amount,
		Status:        transaction.Status,
		PaidAt:        time.Now(),
		TransactionID: transaction.ID,
	}

	payment, err = s.paymentStore.Save(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("save payment: %w", err)
	}

	s.logger.Info("payment processed",
		"payment_id", payment.ID,
		"order_id", orderID,
		"status", payment.Status,
	)
	return payment, nil
}

// UpdateStatus overwrites the status of an existing payment. A missing id is
// ignored: the operation reports success without touching the store, so
// callers cannot distinguish "updated" from "ignored".
func (s *PaymentService) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status string) error {
	payment, err := s.paymentStore.FindByID(ctx, paymentID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil
		}
		return err
	}

	payment.Status = status
	if _, err := s.paymentStore.Save(ctx, payment); err != nil {
		return fmt.Errorf("save payment: %w", err)
	}
	return nil
}

func (s *PaymentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return s.paymentStore.FindByID(ctx, id)
}

func (s *PaymentService) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	return s.paymentStore.FindAll(ctx)
}

func (s *PaymentService) Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	return s.paymentStore.Save(ctx, payment)
}

func (s *PaymentService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.paymentStore.DeleteByID(ctx, id)
}
