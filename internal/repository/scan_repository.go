// internal/repository/scan_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
)

type ScanRepository interface {
	Create(ctx context.Context, scan *entity.URLScan) error
	GetHistory(ctx context.Context, userID uuid.UUID, limit int) ([]entity.URLScan, error)
}

type scanRepository struct {
	db *sqlx.DB
}

func NewScanRepository(db *sqlx.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) Create(ctx context.Context, scan *entity.URLScan) error {
	scan.ID = uuid.Must(uuid.NewV4())
	scan.ScannedAt = time.Now()

	query := `
		INSERT INTO url_scans (id, user_id, url, is_gambling, risk_level, scanned_at)
		VALUES (:id, :user_id, :url, :is_gambling, :risk_level, :scanned_at)`

	_, err := r.db.NamedExecContext(ctx, query, scan)
	if err != nil {
		return fmt.Errorf("failed to create url scan: %w", err)
	}

	return nil
}

func (r *scanRepository) GetHistory(ctx context.Context, userID uuid.UUID, limit int) ([]entity.URLScan, error) {
	var scans []entity.URLScan
	query := `SELECT * FROM url_scans WHERE user_id = $1 ORDER BY scanned_at DESC LIMIT $2`

	err := r.db.SelectContext(ctx, &scans, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get scan history: %w", err)
	}

	return scans, nil
}
