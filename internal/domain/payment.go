// Package domain defines the entities of the pagos service.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment statuses as reported by the gateway. Status is a plain string
// because UpdateStatus accepts free-form values from callers.
const (
	StatusProcesando = "PROCESANDO"
	StatusAprobado   = "APROBADO"
	StatusRechazado  = "RECHAZADO"
)

// Payment is a monetary charge tied to an order and a user. It is created
// only by the payment-processing operation and references the Transaction
// persisted in the same call.
type Payment struct {
	ID            uuid.UUID       `json:"id"`
	Amount        decimal.Decimal `json:"monto"`
	Status        string          `json:"estado"`
	PaidAt        time.Time       `json:"fechaPago"`
	OrderID       uuid.UUID       `json:"orderId"`
	UserID        uuid.UUID       `json:"usuarioId"`
	TransactionID uuid.UUID       `json:"transaccionId"`
}
