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

type TransactionRepository struct {
	db persistence.Executor
}

func NewTransactionRepository(db persistence.Executor) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}

	query := `
		INSERT INTO transacciones (id, pago_id, estado, proveedor, detalle_error, monto, fecha_transaccion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			pago_id = EXCLUDED.pago_id,
			estado = EXCLUDED.estado,
			proveedor = EXCLUDED.proveedor,
			detalle_error = EXCLUDED.detalle_error,
			monto = EXCLUDED.monto,
			fecha_transaccion = EXCLUDED.fecha_transaccion
	`

	m := toTransactionModel(transaction)
	_, err := r.db.Exec(ctx, query,
		m.ID,
		m.PaymentID,
		m.Status,
		m.Provider,
		m.ErrorDetail,
		m.Amount,
		m.TransactedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	return transaction, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `
		SELECT id, pago_id, estado, proveedor, detalle_error, monto, fecha_transaccion
		FROM transacciones WHERE id = $1
	`

	var m TransactionModel
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.PaymentID, &m.Status, &m.Provider, &m.ErrorDetail, &m.Amount, &m.TransactedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("transaction", id)
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	return toTransactionDomain(m), nil
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]*domain.Transaction, error) {
	query := `
		SELECT id, pago_id, estado, proveedor, detalle_error, monto, fecha_transaccion
		FROM transacciones
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Transaction, error) {
		var m TransactionModel
		err := row.Scan(&m.ID, &m.PaymentID, &m.Status, &m.Provider, &m.ErrorDetail, &m.Amount, &m.TransactedAt)
		return toTransactionDomain(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan transactions: %w", err)
	}
	if results == nil {
		results = []*domain.Transaction{}
	}
	return results, nil
}

func (r *TransactionRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM transacciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
