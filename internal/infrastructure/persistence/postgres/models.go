package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Row models mirror the table shapes. Nullable columns use pointer or Null
// types so scans survive rows written before a column was populated.

type PaymentModel struct {
	ID            uuid.UUID
	Amount        decimal.Decimal
	Status        string
	PaidAt        time.Time
	OrderID       uuid.UUID
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

type TransactionModel struct {
	ID           uuid.UUID
	PaymentID    *uuid.UUID
	Status       string
	Provider     *string
	ErrorDetail  *string
	Amount       decimal.NullDecimal
	TransactedAt *time.Time
}

type RefundModel struct {
	ID          uuid.UUID
	PaymentID   uuid.UUID
	Amount      decimal.Decimal
	Status      string
	RequestedAt time.Time
	Reason      *string
}

type UserModel struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type NotificationModel struct {
	ID              uuid.UUID
	Type            string
	Message         string
	SentAt          *time.Time
	RecipientUserID uuid.UUID
}
