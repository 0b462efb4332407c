// internal/service/extension_log_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/repository"
)

type ExtensionLogService interface {
	Append(ctx context.Context, entry entity.LogEntry) (*entity.LogEntry, error)
	AppendEval(ctx context.Context, payload map[string]interface{}) (*entity.LogEntry, error)
	Stats(ctx context.Context, userID string) (*entity.ExtensionStats, *entity.ExtensionStatsMeta, error)
}

type extensionLogService struct {
	repo repository.ExtensionLogRepository
}

func NewExtensionLogService(repo repository.ExtensionLogRepository) ExtensionLogService {
	return &extensionLogService{
		repo: repo,
	}
}

// Append records one event. Event values are passed through unvalidated so
// new client event types keep working without a server deploy.
func (s *extensionLogService) Append(ctx context.Context, entry entity.LogEntry) (*entity.LogEntry, error) {
	stored, err := s.repo.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to append log entry: %w", err)
	}

	return stored, nil
}

// AppendEval stores an arbitrary metric payload in the same log, tagged
// type:"eval". A type supplied by the caller wins over the tag. Eval records
// are not distinguished in aggregation.
func (s *extensionLogService) AppendEval(ctx context.Context, payload map[string]interface{}) (*entity.LogEntry, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode eval payload: %w", err)
	}

	var entry entity.LogEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode eval payload: %w", err)
	}

	if entry.Extra == nil {
		entry.Extra = map[string]interface{}{}
	}
	if _, ok := entry.Extra["type"]; !ok {
		entry.Extra["type"] = "eval"
	}

	return s.Append(ctx, entry)
}

// Stats recomputes the per-domain rollup from the full log on every call;
// nothing is cached or maintained incrementally. When userID is supplied,
// entries with a different or absent userId are excluded.
func (s *extensionLogService) Stats(ctx context.Context, userID string) (*entity.ExtensionStats, *entity.ExtensionStatsMeta, error) {
	entries, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read log entries: %w", err)
	}

	filtered := entries
	if userID != "" {
		filtered = make([]entity.LogEntry, 0, len(entries))
		for _, e := range entries {
			if e.UserID != nil && *e.UserID == userID {
				filtered = append(filtered, e)
			}
		}
	}

	stats := &entity.ExtensionStats{
		Domains: make(map[string]entity.DomainStats),
	}

	for _, e := range filtered {
		domain := e.Domain
		if domain == "" {
			domain = "unknown"
		}
		ds := stats.Domains[domain]

		switch e.Event {
		case entity.EventVisitStart:
			ds.Visits++
		case entity.EventTimeUpdate:
			if e.Seconds != nil {
				ds.TimeSpent += *e.Seconds
				stats.TotalTimeSeconds += *e.Seconds
			}
		case entity.EventThreat:
			stats.ThreatsDetected++
		}

		stats.Domains[domain] = ds
	}

	meta := &entity.ExtensionStatsMeta{TotalEntries: len(filtered)}
	return stats, meta, nil
}
