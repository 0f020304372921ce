// Package application defines the ports between the lifecycle services and
// the infrastructure that backs them.
package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pagosclm/pagos-service/internal/domain"
)

// WebpayClient is the port for the external payment processor.
type WebpayClient interface {
	ProcessTransaction(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal) (*domain.Transaction, error)
	RequestRefund(ctx context.Context, paymentID uuid.UUID, amount decimal.Decimal) (*domain.Refund, error)
	QueryTransactionStatus(ctx context.Context, transactionID uuid.UUID) (*domain.Transaction, error)
}

// Store contracts. Save is insert-or-replace keyed by id and assigns a fresh
// id when the entity carries the zero UUID. FindByID returns a NOT_FOUND
// domain error on a miss. DeleteByID is a no-op on a miss. FindAll returns a
// non-nil slice in no guaranteed order.

type PaymentStore interface {
	Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	FindAll(ctx context.Context) ([]*domain.Payment, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type TransactionStore interface {
	Save(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	FindAll(ctx context.Context) ([]*domain.Transaction, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type RefundStore interface {
	Save(ctx context.Context, refund *domain.Refund) (*domain.Refund, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Refund, error)
	FindAll(ctx context.Context) ([]*domain.Refund, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type UserStore interface {
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type NotificationStore interface {
	Save(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	FindAll(ctx context.Context) ([]*domain.Notification, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
