package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundStatusPendiente is the initial status of every refund request.
const RefundStatusPendiente = "PENDIENTE"

// Refund is a request to return funds for a previously made payment.
// PaymentID is not validated against the payment store; the refund flow
// trusts the caller.
type Refund struct {
	ID          uuid.UUID       `json:"id"`
	PaymentID   uuid.UUID       `json:"pagoId"`
	Amount      decimal.Decimal `json:"monto"`
	Status      string          `json:"estado"`
	RequestedAt time.Time       `json:"fechaSolicitud"`
	Reason      *string         `json:"motivo,omitempty"`
}
