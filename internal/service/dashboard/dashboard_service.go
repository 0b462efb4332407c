// internal/service/dashboard_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/repository"
	extensionLogService "github.com/betshield/betshield-backend/internal/service/extension_log"
	"github.com/gofrs/uuid"
)

type DashboardService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.DashboardStats, error)
}

type dashboardService struct {
	spending     repository.SpendingRepository
	alerts       repository.AlertRepository
	achievements repository.AchievementRepository
	extensionLog extensionLogService.ExtensionLogService
}

func NewDashboardService(
	spending repository.SpendingRepository,
	alerts repository.AlertRepository,
	achievements repository.AchievementRepository,
	extensionLog extensionLogService.ExtensionLogService,
) DashboardService {
	return &dashboardService{
		spending:     spending,
		alerts:       alerts,
		achievements: achievements,
		extensionLog: extensionLog,
	}
}

func (s *dashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*entity.DashboardStats, error) {
	alertsCount, err := s.alerts.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count alerts: %w", err)
	}

	achievementsCount, err := s.achievements.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count achievements: %w", err)
	}

	now := time.Now()
	weekAgo := now.Add(-7 * 24 * time.Hour)
	weekly, err := s.spending.GetByUserAndPeriod(ctx, userID, weekAgo, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly spending: %w", err)
	}

	var weeklyTotal float64
	byDay := make([]entity.DailySpending, 7)
	for i := range byDay {
		day := now.AddDate(0, 0, -(6 - i))
		var amount float64
		for _, e := range weekly {
			if sameDay(e.CreatedAt, day) {
				amount += e.Amount
			}
		}
		byDay[i] = entity.DailySpending{
			Day:    day.Format("Mon"),
			Amount: amount,
		}
	}
	for _, e := range weekly {
		weeklyTotal += e.Amount
	}

	riskEvents, err := s.riskEvents(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.DashboardStats{
		ActiveAlerts:   alertsCount,
		Achievements:   achievementsCount,
		WeeklyTotal:    weeklyTotal,
		WeeklySpending: byDay,
		RiskEvents:     riskEvents,
	}, nil
}

// riskEvents buckets the user's extension-log activity into risk levels:
// detected threats are high, gambling-site time is medium, plain visits are
// low.
func (s *dashboardService) riskEvents(ctx context.Context, userID uuid.UUID) ([]entity.RiskEventCount, error) {
	stats, _, err := s.extensionLog.Stats(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get extension stats: %w", err)
	}

	var visits int
	for _, ds := range stats.Domains {
		visits += ds.Visits
	}

	return []entity.RiskEventCount{
		{Level: "Low", Count: visits},
		{Level: "Medium", Count: int(stats.TotalTimeSeconds / 60)},
		{Level: "High", Count: stats.ThreatsDetected},
	}, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
