// Package postgres implements the entity stores on top of pgx. Save is an
// upsert keyed by id, FindByID reports a miss as a NOT_FOUND domain error
// and DeleteByID never inspects the affected row count.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/infrastructure/persistence"
)

type PaymentRepository struct {
	db persistence.Executor
}

func NewPaymentRepository(db persistence.Executor) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}

	query := `
		INSERT INTO pagos (id, monto, estado, fecha_pago, order_id, usuario_id, transaccion_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			monto = EXCLUDED.monto,
			estado = EXCLUDED.estado,
			fecha_pago = EXCLUDED.fecha_pago,
			order_id = EXCLUDED.order_id,
			usuario_id = EXCLUDED.usuario_id,
			transaccion_id = EXCLUDED.transaccion_id
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.Amount,
		payment.Status,
		payment.PaidAt,
		payment.OrderID,
		payment.UserID,
		payment.TransactionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	return payment, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `
		SELECT id, monto, estado, fecha_pago, order_id, usuario_id, transaccion_id
		FROM pagos WHERE id = $1
	`

	row := r.db.QueryRow(ctx, query, id)
	return scanPayment(row, id)
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	query := `
		SELECT id, monto, estado, fecha_pago, order_id, usuario_id, transaccion_id
		FROM pagos
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Payment, error) {
		var m PaymentModel
		err := row.Scan(&m.ID, &m.Amount, &m.Status, &m.PaidAt, &m.OrderID, &m.UserID, &m.TransactionID)
		return toPaymentDomain(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan payments: %w", err)
	}
	if results == nil {
		results = []*domain.Payment{}
	}
	return results, nil
}

func (r *PaymentRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM pagos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

func scanPayment(row pgx.Row, id uuid.UUID) (*domain.Payment, error) {
	var m PaymentModel
	err := row.Scan(&m.ID, &m.Amount, &m.Status, &m.PaidAt, &m.OrderID, &m.UserID, &m.TransactionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("payment", id)
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}
	return toPaymentDomain(m), nil
}
