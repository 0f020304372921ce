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

type RefundRepository struct {
	db persistence.Executor
}

func NewRefundRepository(db persistence.Executor) *RefundRepository {
	return &RefundRepository{db: db}
}

func (r *RefundRepository) Save(ctx context.Context, refund *domain.Refund) (*domain.Refund, error) {
	if refund.ID == uuid.Nil {
		refund.ID = uuid.New()
	}

	query := `
		INSERT INTO reembolsos (id, pago_id, monto, estado, fecha_solicitud, motivo)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			pago_id = EXCLUDED.pago_id,
			monto = EXCLUDED.monto,
			estado = EXCLUDED.estado,
			fecha_solicitud = EXCLUDED.fecha_solicitud,
			motivo = EXCLUDED.motivo
	`

	_, err := r.db.Exec(ctx, query,
		refund.ID,
		refund.PaymentID,
		refund.Amount,
		refund.Status,
		refund.RequestedAt,
		refund.Reason,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save refund: %w", err)
	}

	return refund, nil
}

func (r *RefundRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Refund, error) {
	query := `
		SELECT id, pago_id, monto, estado, fecha_solicitud, motivo
		FROM reembolsos WHERE id = $1
	`

	var m RefundModel
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.PaymentID, &m.Amount, &m.Status, &m.RequestedAt, &m.Reason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("refund", id)
		}
		return nil, fmt.Errorf("failed to scan refund: %w", err)
	}
	return toRefundDomain(m), nil
}

func (r *RefundRepository) FindAll(ctx context.Context) ([]*domain.Refund, error) {
	query := `
		SELECT id, pago_id, monto, estado, fecha_solicitud, motivo
		FROM reembolsos
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query refunds: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Refund, error) {
		var m RefundModel
		err := row.Scan(&m.ID, &m.PaymentID, &m.Amount, &m.Status, &m.RequestedAt, &m.Reason)
		return toRefundDomain(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan refunds: %w", err)
	}
	if results == nil {
		results = []*domain.Refund{}
	}
	return results, nil
}

func (r *RefundRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reembolsos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete refund: %w", err)
	}
	return nil
}
