// internal/repository/spending_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
)

type SpendingRepository interface {
	Create(ctx context.Context, entry *entity.SpendingEntry) error
	GetByUser(ctx context.Context, userID uuid.UUID) ([]entity.SpendingEntry, error)
	GetByUserAndPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entity.SpendingEntry, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.SpendingEntry, error)
	Update(ctx context.Context, id, userID uuid.UUID, req entity.UpdateSpendingRequest) (*entity.SpendingEntry, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type spendingRepository struct {
	db *sqlx.DB
}

func NewSpendingRepository(db *sqlx.DB) SpendingRepository {
	return &spendingRepository{db: db}
}

func (r *spendingRepository) Create(ctx context.Context, entry *entity.SpendingEntry) error {
	entry.ID = uuid.Must(uuid.NewV4())
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.UpdatedAt = time.Now()

	query := `
		INSERT INTO spending_entries (id, user_id, amount, description, created_at, updated_at)
		VALUES (:id, :user_id, :amount, :description, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return fmt.Errorf("failed to create spending entry: %w", err)
	}

	return nil
}

func (r *spendingRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]entity.SpendingEntry, error) {
	var entries []entity.SpendingEntry
	query := `SELECT * FROM spending_entries WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &entries, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get spending entries: %w", err)
	}

	return entries, nil
}

func (r *spendingRepository) GetByUserAndPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entity.SpendingEntry, error) {
	var entries []entity.SpendingEntry
	query := `
		SELECT * FROM spending_entries
		WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &entries, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get spending entries for period: %w", err)
	}

	return entries, nil
}

func (r *spendingRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.SpendingEntry, error) {
	var entry entity.SpendingEntry
	query := `SELECT * FROM spending_entries WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, &entry, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get spending entry: %w", err)
	}

	return &entry, nil
}

func (r *spendingRepository) Update(ctx context.Context, id, userID uuid.UUID, req entity.UpdateSpendingRequest) (*entity.SpendingEntry, error) {
	query := `
		UPDATE spending_entries
		SET amount = COALESCE($3, amount),
		    description = COALESCE($4, description),
		    created_at = COALESCE($5, created_at),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING *`

	var entry entity.SpendingEntry
	err := r.db.GetContext(ctx, &entry, query, id, userID, req.Amount, req.Description, req.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update spending entry: %w", err)
	}

	return &entry, nil
}

func (r *spendingRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM spending_entries WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete spending entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
