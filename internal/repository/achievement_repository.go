// internal/repository/achievement_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
)

type AchievementRepository interface {
	GetByUser(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type achievementRepository struct {
	db *sqlx.DB
}

func NewAchievementRepository(db *sqlx.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error) {
	var achievements []entity.Achievement
	query := `SELECT * FROM achievements WHERE user_id = $1 ORDER BY unlocked_at DESC`

	err := r.db.SelectContext(ctx, &achievements, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}

	return achievements, nil
}

func (r *achievementRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM achievements WHERE user_id = $1`

	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count achievements: %w", err)
	}

	return count, nil
}
