// internal/repository/extension_log_repository.go
package repository

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/betshield/betshield-backend/internal/entity"
)

// ExtensionLogRepository is the append-only store behind the extension log
// endpoints. Entries are created once and never mutated or deleted; read
// order is append order.
type ExtensionLogRepository interface {
	Append(ctx context.Context, entry entity.LogEntry) (*entity.LogEntry, error)
	ReadAll(ctx context.Context) ([]entity.LogEntry, error)
}

// fileExtensionLogRepository keeps the whole log as one human-readable JSON
// array, rewritten in full on every append. The tmp-file + rename gives
// readers a consistent snapshot (never a torn file); the mutex serializes
// writers within this process.
type fileExtensionLogRepository struct {
	mu         sync.Mutex
	path       string
	legacyPath string
}

func NewExtensionLogRepository(path, legacyPath string) ExtensionLogRepository {
	return &fileExtensionLogRepository{path: path, legacyPath: legacyPath}
}

const idSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// timestamp-plus-random: monotonic enough, collisions negligible, not a
// uniqueness guarantee.
func newEntryID() string {
	buf := make([]byte, 6)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = idSuffixAlphabet[int(b)%len(idSuffixAlphabet)]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(buf)
}

func (r *fileExtensionLogRepository) Append(ctx context.Context, entry entity.LogEntry) (*entity.LogEntry, error) {
	// server assigns id and timestamp, overwriting whatever the caller sent
	entry.ID = newEntryID()
	entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000Z")

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.readAllLocked()
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)

	if err := r.writeLocked(entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *fileExtensionLogRepository) ReadAll(ctx context.Context) ([]entity.LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAllLocked()
}

func (r *fileExtensionLogRepository) readAllLocked() ([]entity.LogEntry, error) {
	if err := r.ensureDataFileLocked(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extension log: %w", err)
	}
	if len(raw) == 0 {
		return []entity.LogEntry{}, nil
	}

	var entries []entity.LogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse extension log: %w", err)
	}
	if entries == nil {
		entries = []entity.LogEntry{}
	}
	return entries, nil
}

// ensureDataFileLocked bootstraps the canonical file on first use. If it is
// missing and a legacy file exists, the legacy contents are copied over
// (the legacy file itself is left untouched); a legacy parse failure falls
// back to an empty list. Filesystem errors propagate to the caller.
func (r *fileExtensionLogRepository) ensureDataFileLocked() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat extension log: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	entries := []entity.LogEntry{}
	if r.legacyPath != "" {
		if raw, err := os.ReadFile(r.legacyPath); err == nil {
			var migrated []entity.LogEntry
			if err := json.Unmarshal(raw, &migrated); err == nil && migrated != nil {
				entries = migrated
			}
		}
	}

	return r.writeLocked(entries)
}

func (r *fileExtensionLogRepository) writeLocked(entries []entity.LogEntry) error {
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode extension log: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write extension log: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace extension log: %w", err)
	}
	return nil
}
