package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

type Achievement struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt" db:"unlocked_at"`
}
