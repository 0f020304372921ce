package postgres

import (
	"github.com/shopspring/decimal"

	"github.com/pagosclm/pagos-service/internal/domain"
)

func toPaymentDomain(m PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:            m.ID,
		Amount:        m.Amount,
		Status:        m.Status,
		PaidAt:        m.PaidAt,
		OrderID:       m.OrderID,
		UserID:        m.UserID,
		TransactionID: m.TransactionID,
	}
}

func toTransactionDomain(m TransactionModel) *domain.Transaction {
	t := &domain.Transaction{
		ID:          m.ID,
		PaymentID:   m.PaymentID,
		Status:      m.Status,
		ErrorDetail: m.ErrorDetail,
	}
	if m.Provider != nil {
		t.Provider = *m.Provider
	}
	if m.Amount.Valid {
		t.Amount = m.Amount.Decimal
	}
	if m.TransactedAt != nil {
		t.TransactedAt = *m.TransactedAt
	}
	return t
}

func toTransactionModel(t *domain.Transaction) TransactionModel {
	m := TransactionModel{
		ID:          t.ID,
		PaymentID:   t.PaymentID,
		Status:      t.Status,
		ErrorDetail: t.ErrorDetail,
		Amount:      decimal.NullDecimal{Decimal: t.Amount, Valid: true},
	}
	if t.Provider != "" {
		m.Provider = &t.Provider
	}
	if !t.TransactedAt.IsZero() {
		at := t.TransactedAt
		m.TransactedAt = &at
	}
	return m
}

func toRefundDomain(m RefundModel) *domain.Refund {
	return &domain.Refund{
		ID:          m.ID,
		PaymentID:   m.PaymentID,
		Amount:      m.Amount,
		Status:      m.Status,
		RequestedAt: m.RequestedAt,
		Reason:      m.Reason,
	}
}

func toUserDomain(m UserModel) *domain.User {
	return &domain.User{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
	}
}

func toNotificationDomain(m NotificationModel) *domain.Notification {
	n := &domain.Notification{
		ID:              m.ID,
		Type:            m.Type,
		Message:         m.Message,
		RecipientUserID: m.RecipientUserID,
	}
	if m.SentAt != nil {
		n.SentAt = *m.SentAt
	}
	return n
}
