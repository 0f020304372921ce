package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProviderWebpayPlus is the only provider the gateway stub reports.
const ProviderWebpayPlus = "WEBPAYPLUS"

// Transaction is the gateway-side record of attempting to charge a payment.
// Created once per payment; immutable afterwards except for its status.
// PaymentID is a back-reference filled in after the owning payment exists.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	PaymentID    *uuid.UUID      `json:"pagoId,omitempty"`
	Status       string          `json:"estado"`
	Provider     string          `json:"proveedor"`
	ErrorDetail  *string         `json:"detalleError,omitempty"`
	Amount       decimal.Decimal `json:"monto"`
	TransactedAt time.Time       `json:"fechaTransaccion"`
}
