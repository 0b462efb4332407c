package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogRepo(t *testing.T) (ExtensionLogRepository, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "extension-log.json")
	return NewExtensionLogRepository(path, filepath.Join(dir, "legacy.json")), path
}

func TestAppend_ReadAll_Roundtrip(t *testing.T) {
	repo, _ := newTestLogRepo(t)
	ctx := context.Background()

	stored, err := repo.Append(ctx, entity.LogEntry{
		Event:     entity.EventVisitStart,
		Domain:    "bet365.com",
		SessionID: "s1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID, "server should assign an id")
	assert.NotEmpty(t, stored.Timestamp, "server should assign a timestamp")

	entries, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, stored.ID, entries[0].ID)
	assert.Equal(t, entity.EventVisitStart, entries[0].Event)
	assert.Equal(t, "bet365.com", entries[0].Domain)
	assert.Equal(t, "s1", entries[0].SessionID)
}

func TestAppend_OverwritesCallerIDAndTimestamp(t *testing.T) {
	repo, _ := newTestLogRepo(t)

	stored, err := repo.Append(context.Background(), entity.LogEntry{
		ID:        "caller-chosen",
		Timestamp: "1999-01-01T00:00:00.000Z",
		Event:     entity.EventThreat,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "caller-chosen", stored.ID)
	assert.NotEqual(t, "1999-01-01T00:00:00.000Z", stored.Timestamp)
}

func TestAppend_IDsAreDistinct(t *testing.T) {
	repo, _ := newTestLogRepo(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		stored, err := repo.Append(ctx, entity.LogEntry{Event: entity.EventTimeUpdate})
		require.NoError(t, err)
		assert.False(t, seen[stored.ID], "id %q repeated", stored.ID)
		seen[stored.ID] = true
	}
}

func TestAppend_PreservesUnknownFields(t *testing.T) {
	repo, _ := newTestLogRepo(t)
	ctx := context.Background()

	_, err := repo.Append(ctx, entity.LogEntry{
		Event: entity.EventThreat,
		Extra: map[string]interface{}{"reason": "ip-hostname", "custom": float64(7)},
	})
	require.NoError(t, err)

	entries, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ip-hostname", entries[0].Extra["reason"])
	assert.Equal(t, float64(7), entries[0].Extra["custom"])
}

func TestReadAll_EmptyStore(t *testing.T) {
	repo, path := newTestLogRepo(t)

	entries, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)

	// first read bootstraps the canonical file
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestReadAll_MigratesLegacyFileWithoutTouchingIt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "extension-log.json")
	legacyPath := filepath.Join(dir, "extension-log.json")

	legacyContent := `[{"event":"visit_start"}]`
	require.NoError(t, os.WriteFile(legacyPath, []byte(legacyContent), 0o644))

	repo := NewExtensionLogRepository(path, legacyPath)

	entries, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.EventVisitStart, entries[0].Event)

	// copy, not move
	raw, err := os.ReadFile(legacyPath)
	require.NoError(t, err)
	assert.Equal(t, legacyContent, string(raw))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestReadAll_CorruptLegacyFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "extension-log.json")
	legacyPath := filepath.Join(dir, "extension-log.json")

	require.NoError(t, os.WriteFile(legacyPath, []byte("{not json"), 0o644))

	repo := NewExtensionLogRepository(path, legacyPath)

	entries, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppend_LeavesNoTempFile(t *testing.T) {
	repo, path := newTestLogRepo(t)

	_, err := repo.Append(context.Background(), entity.LogEntry{Event: entity.EventVisitEnd})
	require.NoError(t, err)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
