package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/repository"
	extensionLogService "github.com/betshield/betshield-backend/internal/service/extension_log"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpendingRepo struct {
	entries []entity.SpendingEntry
}

func (f *fakeSpendingRepo) Create(_ context.Context, entry *entity.SpendingEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeSpendingRepo) GetByUser(_ context.Context, _ uuid.UUID) ([]entity.SpendingEntry, error) {
	return f.entries, nil
}

func (f *fakeSpendingRepo) GetByUserAndPeriod(_ context.Context, _ uuid.UUID, start, end time.Time) ([]entity.SpendingEntry, error) {
	var out []entity.SpendingEntry
	for _, e := range f.entries {
		if !e.CreatedAt.Before(start) && !e.CreatedAt.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSpendingRepo) GetByID(_ context.Context, _, _ uuid.UUID) (*entity.SpendingEntry, error) {
	return nil, nil
}

func (f *fakeSpendingRepo) Update(_ context.Context, _, _ uuid.UUID, _ entity.UpdateSpendingRequest) (*entity.SpendingEntry, error) {
	return nil, nil
}

func (f *fakeSpendingRepo) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

type fakeAlertRepo struct {
	unread int
}

func (f *fakeAlertRepo) GetByUser(_ context.Context, _ uuid.UUID) ([]entity.Alert, error) {
	return nil, nil
}

func (f *fakeAlertRepo) CountUnread(_ context.Context, _ uuid.UUID) (int, error) {
	return f.unread, nil
}

func (f *fakeAlertRepo) MarkRead(_ context.Context, _, _ uuid.UUID) (*entity.Alert, error) {
	return nil, nil
}

func (f *fakeAlertRepo) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

type fakeAchievementRepo struct {
	count int
}

func (f *fakeAchievementRepo) GetByUser(_ context.Context, _ uuid.UUID) ([]entity.Achievement, error) {
	return nil, nil
}

func (f *fakeAchievementRepo) CountByUser(_ context.Context, _ uuid.UUID) (int, error) {
	return f.count, nil
}

func newTestLogService(t *testing.T) extensionLogService.ExtensionLogService {
	t.Helper()
	dir := t.TempDir()
	repo := repository.NewExtensionLogRepository(
		filepath.Join(dir, "data", "extension-log.json"),
		filepath.Join(dir, "legacy.json"),
	)
	return extensionLogService.NewExtensionLogService(repo)
}

func TestGetStats(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	uid := userID.String()

	spending := &fakeSpendingRepo{entries: []entity.SpendingEntry{
		{UserID: userID, Amount: 40, CreatedAt: time.Now().Add(-24 * time.Hour)},
		{UserID: userID, Amount: 10, CreatedAt: time.Now().Add(-time.Hour)},
	}}
	logSvc := newTestLogService(t)
	ctx := context.Background()

	for _, e := range []entity.LogEntry{
		{Event: entity.EventVisitStart, Domain: "bet365.com", UserID: &uid},
		{Event: entity.EventTimeUpdate, Domain: "bet365.com", Seconds: floatPtr(120), UserID: &uid},
		{Event: entity.EventThreat, Domain: "bet365.com", UserID: &uid},
	} {
		_, err := logSvc.Append(ctx, e)
		require.NoError(t, err)
	}

	svc := NewDashboardService(spending, &fakeAlertRepo{unread: 3}, &fakeAchievementRepo{count: 2}, logSvc)

	stats, err := svc.GetStats(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.ActiveAlerts)
	assert.Equal(t, 2, stats.Achievements)
	assert.Equal(t, float64(50), stats.WeeklyTotal)
	require.Len(t, stats.WeeklySpending, 7)

	var dailySum float64
	for _, d := range stats.WeeklySpending {
		dailySum += d.Amount
	}
	assert.Equal(t, stats.WeeklyTotal, dailySum)

	require.Len(t, stats.RiskEvents, 3)
	assert.Equal(t, entity.RiskEventCount{Level: "Low", Count: 1}, stats.RiskEvents[0])
	assert.Equal(t, entity.RiskEventCount{Level: "Medium", Count: 2}, stats.RiskEvents[1])
	assert.Equal(t, entity.RiskEventCount{Level: "High", Count: 1}, stats.RiskEvents[2])
}

func floatPtr(v float64) *float64 { return &v }
