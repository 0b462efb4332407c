package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
)

type Report struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"userId" db:"user_id"`
	Type      string     `json:"type" db:"type"`
	Title     string     `json:"title" db:"title"`
	Data      ReportData `json:"data" db:"data"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

type ReportData struct {
	TotalSpending float64      `json:"totalSpending"`
	EntryCount    int          `json:"entryCount"`
	Period        ReportPeriod `json:"period"`
}

type ReportPeriod struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// Stored as a jsonb column.
func (d ReportData) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *ReportData) Scan(value interface{}) error {
	if value == nil {
		*d = ReportData{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("cannot scan %T into ReportData", value)
	}
}

type GenerateReportRequest struct {
	Type      string     `json:"type"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type ReportDownload struct {
	Report
	DownloadURL string `json:"downloadUrl"`
}
