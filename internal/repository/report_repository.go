// internal/repository/report_repository.go
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

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByUser(ctx context.Context, userID uuid.UUID) ([]entity.Report, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Report, error)
}

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	report.ID = uuid.Must(uuid.NewV4())
	report.CreatedAt = time.Now()

	query := `
		INSERT INTO reports (id, user_id, type, title, data, created_at)
		VALUES (:id, :user_id, :type, :title, :data, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, report)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	return nil
}

func (r *reportRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]entity.Report, error) {
	var reports []entity.Report
	query := `SELECT * FROM reports WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &reports, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}

	return reports, nil
}

func (r *reportRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Report, error) {
	var report entity.Report
	query := `SELECT * FROM reports WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, &report, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return &report, nil
}
