// internal/service/scanner_service.go
package service

import (
	"context"
	"fmt"

	"github.com/betshield/betshield-backend/internal/classifier"
	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/repository"
	"github.com/gofrs/uuid"
)

const scanHistoryLimit = 100

type ScannerService interface {
	ScanURL(ctx context.Context, userID uuid.UUID, url string) (*entity.ScanURLResponse, error)
	GetHistory(ctx context.Context, userID uuid.UUID) ([]entity.URLScan, error)
}

type scannerService struct {
	repo repository.ScanRepository
}

func NewScannerService(repo repository.ScanRepository) ScannerService {
	return &scannerService{repo: repo}
}

func (s *scannerService) ScanURL(ctx context.Context, userID uuid.UUID, url string) (*entity.ScanURLResponse, error) {
	if url == "" {
		return nil, fmt.Errorf("url is required")
	}

	isGambling := classifier.ContainsGamblingKeyword(url)
	riskLevel := entity.RiskLevelLow
	if isGambling {
		riskLevel = entity.RiskLevelHigh
	}

	scan := &entity.URLScan{
		UserID:     userID,
		URL:        url,
		IsGambling: isGambling,
		RiskLevel:  riskLevel,
	}

	if err := s.repo.Create(ctx, scan); err != nil {
		return nil, fmt.Errorf("failed to save url scan: %w", err)
	}

	message := "✓ No gambling content detected"
	if isGambling {
		message = "⚠️ Gambling site detected!"
	}

	return &entity.ScanURLResponse{
		URLScan: *scan,
		Message: message,
	}, nil
}

func (s *scannerService) GetHistory(ctx context.Context, userID uuid.UUID) ([]entity.URLScan, error) {
	scans, err := s.repo.GetHistory(ctx, userID, scanHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get scan history: %w", err)
	}

	return scans, nil
}
