package alerts

import (
	"context"
	"fmt"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/repository"
	"github.com/gofrs/uuid"
)

type AlertsService struct {
	Repo repository.AlertRepository
}

func NewAlertsService(repo repository.AlertRepository) *AlertsService {
	return &AlertsService{Repo: repo}
}

func (s *AlertsService) GetAll(ctx context.Context, userID uuid.UUID) ([]entity.Alert, error) {
	return s.Repo.GetByUser(ctx, userID)
}

func (s *AlertsService) MarkRead(ctx context.Context, id, userID uuid.UUID) (*entity.Alert, error) {
	alert, err := s.Repo.MarkRead(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, fmt.Errorf("alert not found")
	}

	return alert, nil
}

func (s *AlertsService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.Repo.Delete(ctx, id, userID)
}
