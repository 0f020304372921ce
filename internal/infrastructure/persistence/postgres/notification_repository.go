package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/infrastructure/persistence"
)

type NotificationRepository struct {
	db persistence.Executor
}

func NewNotificationRepository(db persistence.Executor) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Save(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}

	query := `
		INSERT INTO notificaciones (id, tipo, mensaje, fecha_envio, destinatario_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			tipo = EXCLUDED.tipo,
			mensaje = EXCLUDED.mensaje,
			fecha_envio = EXCLUDED.fecha_envio,
			destinatario_id = EXCLUDED.destinatario_id
	`

	var sentAt *time.Time
	if !notification.SentAt.IsZero() {
		at := notification.SentAt
		sentAt = &at
	}

	_, err := r.db.Exec(ctx, query,
		notification.ID,
		notification.Type,
		notification.Message,
		sentAt,
		notification.RecipientUserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}

	return notification, nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	query := `
		SELECT id, tipo, mensaje, fecha_envio, destinatario_id
		FROM notificaciones WHERE id = $1
	`

	var m NotificationModel
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Type, &m.Message, &m.SentAt, &m.RecipientUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("notification", id)
		}
		return nil, fmt.Errorf("failed to scan notification: %w", err)
	}
	return toNotificationDomain(m), nil
}

func (r *NotificationRepository) FindAll(ctx context.Context) ([]*domain.Notification, error) {
	query := `
		SELECT id, tipo, mensaje, fecha_envio, destinatario_id
		FROM notificaciones
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Notification, error) {
		var m NotificationModel
		err := row.Scan(&m.ID, &m.Type, &m.Message, &m.SentAt, &m.RecipientUserID)
		return toNotificationDomain(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan notifications: %w", err)
	}
	if results == nil {
		results = []*domain.Notification{}
	}
	return results, nil
}

func (r *NotificationRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM notificaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}
