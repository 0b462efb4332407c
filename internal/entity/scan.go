package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	RiskLevelLow  = "low"
	RiskLevelHigh = "high"
)

type URLScan struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"userId" db:"user_id"`
	URL        string    `json:"url" db:"url"`
	IsGambling bool      `json:"isGambling" db:"is_gambling"`
	RiskLevel  string    `json:"riskLevel" db:"risk_level"`
	ScannedAt  time.Time `json:"scannedAt" db:"scanned_at"`
}

type ScanURLRequest struct {
	URL string `json:"url" binding:"required"`
}

type ScanURLResponse struct {
	URLScan
	Message string `json:"message"`
}
