package service

import (
	"context"
	"testing"
	"time"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpendingRepo struct {
	entries []entity.SpendingEntry
}

func (f *fakeSpendingRepo) Create(_ context.Context, entry *entity.SpendingEntry) error {
	entry.ID = uuid.Must(uuid.NewV4())
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeSpendingRepo) GetByUser(_ context.Context, userID uuid.UUID) ([]entity.SpendingEntry, error) {
	var out []entity.SpendingEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSpendingRepo) GetByUserAndPeriod(_ context.Context, userID uuid.UUID, start, end time.Time) ([]entity.SpendingEntry, error) {
	var out []entity.SpendingEntry
	for _, e := range f.entries {
		if e.UserID == userID && !e.CreatedAt.Before(start) && !e.CreatedAt.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSpendingRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*entity.SpendingEntry, error) {
	for _, e := range f.entries {
		if e.ID == id && e.UserID == userID {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

func (f *fakeSpendingRepo) Update(_ context.Context, id, userID uuid.UUID, req entity.UpdateSpendingRequest) (*entity.SpendingEntry, error) {
	for i, e := range f.entries {
		if e.ID == id && e.UserID == userID {
			if req.Amount != nil {
				f.entries[i].Amount = *req.Amount
			}
			if req.Description != nil {
				f.entries[i].Description = *req.Description
			}
			entry := f.entries[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (f *fakeSpendingRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i, e := range f.entries {
		if e.ID == id && e.UserID == userID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestGetSummary(t *testing.T) {
	repo := &fakeSpendingRepo{}
	svc := NewSpendingService(repo)
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	lastMonth := time.Now().AddDate(0, -1, 0)
	for _, req := range []entity.CreateSpendingRequest{
		{Amount: 50, Description: "poker buy-in"},
		{Amount: 25, Description: "slots"},
		{Amount: 100, Description: "old entry", Date: &lastMonth},
	} {
		_, err := svc.Create(ctx, userID, req)
		require.NoError(t, err)
	}

	summary, err := svc.GetSummary(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, float64(175), summary.Total)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 58.33, summary.Average)
	assert.Equal(t, float64(75), summary.ThisMonth)
}

func TestGetSummary_Empty(t *testing.T) {
	svc := NewSpendingService(&fakeSpendingRepo{})

	summary, err := svc.GetSummary(context.Background(), uuid.Must(uuid.NewV4()))
	require.NoError(t, err)

	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.Count)
	assert.Zero(t, summary.Average)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewSpendingService(&fakeSpendingRepo{})

	_, err := svc.Update(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), entity.UpdateSpendingRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
