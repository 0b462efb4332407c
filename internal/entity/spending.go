package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

type SpendingEntry struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	Amount      float64   `json:"amount" db:"amount"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateSpendingRequest struct {
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date,omitempty"`
}

type UpdateSpendingRequest struct {
	Amount      *float64   `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

type SpendingSummary struct {
	Total     float64 `json:"total"`
	Count     int     `json:"count"`
	Average   float64 `json:"average"`
	ThisMonth float64 `json:"thisMonth"`
}
