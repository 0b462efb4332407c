package achievements

import (
	"context"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/repository"
	"github.com/gofrs/uuid"
)

type AchievementsService struct {
	Repo repository.AchievementRepository
}

func NewAchievementsService(repo repository.AchievementRepository) *AchievementsService {
	return &AchievementsService{Repo: repo}
}

func (s *AchievementsService) GetAll(ctx context.Context, userID uuid.UUID) ([]entity.Achievement, error) {
	return s.Repo.GetByUser(ctx, userID)
}
