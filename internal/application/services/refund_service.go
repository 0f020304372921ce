package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pagosclm/pagos-service/internal/application"
	"github.com/pagosclm/pagos-service/internal/domain"
)

type RefundService struct {
	refundStore application.RefundStore
	webpay      application.WebpayClient
	logger      *slog.Logger
}

func NewRefundService(
	refundStore application.RefundStore,
	webpay application.WebpayClient,
	logger *slog.Logger,
) *RefundService {
	return &RefundService{
		refundStore: refundStore,
		webpay:      webpay,
		logger:      logger,
	}
}

// ProcessRefund requests a refund for a payment through the gateway and
// persists the result. The amount must be greater than zero. The payment id
// is not checked against the payment store.
func (s *RefundService) ProcessRefund(ctx context.Context, paymentID uuid.UUID, amount decimal.Decimal) (*domain.Refund, error) {
	if amount.Sign() <= 0 {
		return nil, domain.NewInvalidAmountError("el monto debe ser mayor que cero")
	}

	s.logger.Info("requesting refund", "payment_id", paymentID, "amount", amount)

	refund, err := s.webpay.RequestRefund(ctx, paymentID, amount)
	if err != nil {
		return nil, fmt.Errorf("gateway refund: %w", err)
	}

	refund, err = s.refundStore.Save(ctx, refund)
	if err != nil {
		return nil, fmt.Errorf("save refund: %w", err)
	}
	return refund, nil
}

// UpdateStatus overwrites the status of an existing refund, silently
// ignoring a missing id.
func (s *RefundService) UpdateStatus(ctx context.Context, refundID uuid.UUID, status string) error {
	refund, err := s.refundStore.FindByID(ctx, refundID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil
		}
		return err
	}

	refund.Status = status
	if _, err := s.refundStore.Save(ctx, refund); err != nil {
		return fmt.Errorf("save refund: %w", err)
	}
	return nil
}

func (s *RefundService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Refund, error) {
	return s.refundStore.FindByID(ctx, id)
}

func (s *RefundService) FindAll(ctx context.Context) ([]*domain.Refund, error) {
	return s.refundStore.FindAll(ctx)
}

func (s *RefundService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.refundStore.DeleteByID(ctx, id)
}
