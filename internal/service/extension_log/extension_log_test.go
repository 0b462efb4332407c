package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) ExtensionLogService {
	t.Helper()
	dir := t.TempDir()
	repo := repository.NewExtensionLogRepository(
		filepath.Join(dir, "data", "extension-log.json"),
		filepath.Join(dir, "legacy.json"),
	)
	return NewExtensionLogService(repo)
}

func seconds(v float64) *float64 { return &v }

func strptr(s string) *string { return &s }

func TestStats_FullSessionScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Append(ctx, entity.LogEntry{Event: entity.EventVisitStart, Domain: "bet365.com", SessionID: "s1"})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = svc.Append(ctx, entity.LogEntry{Event: entity.EventTimeUpdate, Domain: "bet365.com", SessionID: "s1", Seconds: seconds(5)})
		require.NoError(t, err)
	}
	_, err = svc.Append(ctx, entity.LogEntry{
		Event: entity.EventVisitEnd, Domain: "bet365.com", SessionID: "s1",
		Extra: map[string]interface{}{"totalSeconds": float64(10)},
	})
	require.NoError(t, err)

	stats, meta, err := svc.Stats(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, 4, meta.TotalEntries)
	assert.Equal(t, float64(10), stats.TotalTimeSeconds)
	assert.Equal(t, 0, stats.ThreatsDetected)
	assert.Equal(t, entity.DomainStats{Visits: 1, TimeSpent: 10}, stats.Domains["bet365.com"])
}

func TestStats_TimeSpentSumsToTotal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, e := range []entity.LogEntry{
		{Event: entity.EventVisitStart, Domain: "a.com"},
		{Event: entity.EventTimeUpdate, Domain: "a.com", Seconds: seconds(5)},
		{Event: entity.EventVisitStart, Domain: "b.com"},
		{Event: entity.EventTimeUpdate, Domain: "b.com", Seconds: seconds(15)},
		{Event: entity.EventTimeUpdate, Domain: "b.com", Seconds: seconds(5)},
		{Event: entity.EventThreat, Domain: "b.com"},
	} {
		_, err := svc.Append(ctx, e)
		require.NoError(t, err)
	}

	stats, _, err := svc.Stats(ctx, "")
	require.NoError(t, err)

	var sum float64
	for _, ds := range stats.Domains {
		sum += ds.TimeSpent
	}
	assert.Equal(t, stats.TotalTimeSeconds, sum)
	assert.Equal(t, 1, stats.ThreatsDetected)
}

func TestStats_UserFilterExcludesOthersAndAnonymous(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, e := range []entity.LogEntry{
		{Event: entity.EventVisitStart, Domain: "a.com", UserID: strptr("u1")},
		{Event: entity.EventTimeUpdate, Domain: "a.com", Seconds: seconds(5), UserID: strptr("u1")},
		{Event: entity.EventVisitStart, Domain: "a.com", UserID: strptr("u2")},
		{Event: entity.EventVisitStart, Domain: "a.com"}, // no userId
	} {
		_, err := svc.Append(ctx, e)
		require.NoError(t, err)
	}

	stats, meta, err := svc.Stats(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, meta.TotalEntries)
	assert.Equal(t, entity.DomainStats{Visits: 1, TimeSpent: 5}, stats.Domains["a.com"])
}

func TestStats_MissingDomainBucketsAsUnknown(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Append(ctx, entity.LogEntry{Event: entity.EventVisitStart})
	require.NoError(t, err)

	stats, _, err := svc.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Domains["unknown"].Visits)
}

func TestStats_NonNumericSecondsIgnored(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// a seconds value that never parsed as a number stays in Extra and
	// must not contribute to the rollup
	_, err := svc.Append(ctx, entity.LogEntry{
		Event: entity.EventTimeUpdate, Domain: "a.com",
		Extra: map[string]interface{}{"seconds": "five"},
	})
	require.NoError(t, err)

	stats, _, err := svc.Stats(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTimeSeconds)
	assert.Zero(t, stats.Domains["a.com"].TimeSpent)
}

func TestAppendEval_TagsEntries(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stored, err := svc.AppendEval(ctx, map[string]interface{}{
		"metric": "model-score",
		"value":  0.93,
	})
	require.NoError(t, err)

	assert.Equal(t, "eval", stored.Extra["type"])
	assert.Equal(t, "model-score", stored.Extra["metric"])
	assert.NotEmpty(t, stored.ID)
}

func TestAppendEval_CallerTypeWins(t *testing.T) {
	svc := newTestService(t)

	stored, err := svc.AppendEval(context.Background(), map[string]interface{}{
		"type":   "custom",
		"metric": "m",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", stored.Extra["type"])
}

func TestAppendEval_NotDistinguishedInStats(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AppendEval(ctx, map[string]interface{}{"metric": "m", "value": 1.0})
	require.NoError(t, err)

	stats, meta, err := svc.Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, meta.TotalEntries)
	_, ok := stats.Domains["unknown"]
	assert.True(t, ok, "eval entries land in the unknown bucket")
	assert.Zero(t, stats.Domains["unknown"].Visits)
}
