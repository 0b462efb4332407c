// internal/repository/alert_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
)

type AlertRepository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) ([]entity.Alert, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*entity.Alert, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type alertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]entity.Alert, error) {
	var alerts []entity.Alert
	query := `SELECT * FROM alerts WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &alerts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get alerts: %w", err)
	}

	return alerts, nil
}

func (r *alertRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM alerts WHERE user_id = $1 AND is_read = false`

	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread alerts: %w", err)
	}

	return count, nil
}

func (r *alertRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) (*entity.Alert, error) {
	query := `
		UPDATE alerts
		SET is_read = true, read_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING *`

	var alert entity.Alert
	err := r.db.GetContext(ctx, &alert, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to mark alert as read: %w", err)
	}

	return &alert, nil
}

func (r *alertRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM alerts WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
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
