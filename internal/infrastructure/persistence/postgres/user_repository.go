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

type UserRepository struct {
	db persistence.Executor
}

func NewUserRepository(db persistence.Executor) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query := `
		INSERT INTO usuarios (id, nombre, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			email = EXCLUDED.email
	`

	_, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email)
	if err != nil {
		if persistence.IsUniqueViolation(err) {
			return nil, domain.NewValidationError("el email ya está registrado")
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var m UserModel
	err := r.db.QueryRow(ctx, `SELECT id, nombre, email FROM usuarios WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user", id)
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return toUserDomain(m), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nombre, email FROM usuarios`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.User, error) {
		var m UserModel
		err := row.Scan(&m.ID, &m.Name, &m.Email)
		return toUserDomain(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	if results == nil {
		results = []*domain.User{}
	}
	return results, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
