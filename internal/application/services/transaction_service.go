package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/pagosclm/pagos-service/internal/application"
	"github.com/pagosclm/pagos-service/internal/domain"
)

// TransactionService exposes the transaction store plus a status query
// against the gateway.
type TransactionService struct {
	transactionStore application.TransactionStore
	webpay           application.WebpayClient
}

func NewTransactionService(transactionStore application.TransactionStore, webpay application.WebpayClient) *TransactionService {
	return &TransactionService{
		transactionStore: transactionStore,
		webpay:           webpay,
	}
}

// QueryStatus asks the gateway for the current state of a transaction. The
// result is not written back to the store.
func (s *TransactionService) QueryStatus(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error) {
	return s.webpay.QueryTransactionStatus(ctx, transactionID)
}

func (s *TransactionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.transactionStore.FindByID(ctx, id)
}

func (s *TransactionService) FindAll(ctx context.Context) ([]*domain.Transaction, error) {
	return s.transactionStore.FindAll(ctx)
}

func (s *TransactionService) Save(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	return s.transactionStore.Save(ctx, transaction)
}

func (s *TransactionService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.transactionStore.DeleteByID(ctx, id)
}
