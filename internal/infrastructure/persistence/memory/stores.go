package memory

import (
	"github.com/google/uuid"

	"github.com/pagosclm/pagos-service/internal/domain"
)

type PaymentStore struct {
	*store[domain.Payment]
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{newStore(
		"payment",
		func(p *domain.Payment) uuid.UUID { return p.ID },
		func(p *domain.Payment, id uuid.UUID) { p.ID = id },
	)}
}

type TransactionStore struct {
	*store[domain.Transaction]
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{newStore(
		"transaction",
		func(t *domain.Transaction) uuid.UUID { return t.ID },
		func(t *domain.Transaction, id uuid.UUID) { t.ID = id },
	)}
}

type RefundStore struct {
	*store[domain.Refund]
}

func NewRefundStore() *RefundStore {
	return &RefundStore{newStore(
		"refund",
		func(r *domain.Refund) uuid.UUID { return r.ID },
		func(r *domain.Refund, id uuid.UUID) { r.ID = id },
	)}
}

type UserStore struct {
	*store[domain.User]
}

func NewUserStore() *UserStore {
	return &UserStore{newStore(
		"user",
		func(u *domain.User) uuid.UUID { return u.ID },
		func(u *domain.User, id uuid.UUID) { u.ID = id },
	)}
}

type NotificationStore struct {
	*store[domain.Notification]
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{newStore(
		"notification",
		func(n *domain.Notification) uuid.UUID { return n.ID },
		func(n *domain.Notification, id uuid.UUID) { n.ID = id },
	)}
}
