// internal/service/spending_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/repository"
	"github.com/betshield/betshield-backend/pkg/utils"
	"github.com/gofrs/uuid"
)

type SpendingService interface {
	Create(ctx context.Context, userID uuid.UUID, req entity.CreateSpendingRequest) (*entity.SpendingEntry, error)
	GetAll(ctx context.Context, userID uuid.UUID) ([]entity.SpendingEntry, error)
	GetSummary(ctx context.Context, userID uuid.UUID) (*entity.SpendingSummary, error)
	Update(ctx context.Context, id, userID uuid.UUID, req entity.UpdateSpendingRequest) (*entity.SpendingEntry, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type spendingService struct {
	repo repository.SpendingRepository
}

func NewSpendingService(repo repository.SpendingRepository) SpendingService {
	return &spendingService{repo: repo}
}

func (s *spendingService) Create(ctx context.Context, userID uuid.UUID, req entity.CreateSpendingRequest) (*entity.SpendingEntry, error) {
	entry := &entity.SpendingEntry{
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Date != nil {
		entry.CreatedAt = *req.Date
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *spendingService) GetAll(ctx context.Context, userID uuid.UUID) ([]entity.SpendingEntry, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *spendingService) GetSummary(ctx context.Context, userID uuid.UUID) (*entity.SpendingSummary, error) {
	entries, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get spending entries: %w", err)
	}

	summary := &entity.SpendingSummary{Count: len(entries)}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for _, e := range entries {
		summary.Total += e.Amount
		if !e.CreatedAt.Before(monthStart) {
			summary.ThisMonth += e.Amount
		}
	}
	if summary.Count > 0 {
		summary.Average = utils.RoundToTwoDecimals(summary.Total / float64(summary.Count))
	}

	return summary, nil
}

func (s *spendingService) Update(ctx context.Context, id, userID uuid.UUID, req entity.UpdateSpendingRequest) (*entity.SpendingEntry, error) {
	entry, err := s.repo.Update(ctx, id, userID, req)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("spending entry not found")
	}

	return entry, nil
}

func (s *spendingService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.Delete(ctx, id, userID)
}
