// internal/service/reports_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/repository"
	"github.com/betshield/betshield-backend/pkg/utils"
	"github.com/gofrs/uuid"
)

type ReportsService interface {
	GetAll(ctx context.Context, userID uuid.UUID) ([]entity.Report, error)
	Generate(ctx context.Context, userID uuid.UUID, req entity.GenerateReportRequest) (*entity.Report, error)
	GetDownload(ctx context.Context, id, userID uuid.UUID) (*entity.ReportDownload, error)
}

type reportsService struct {
	repo     repository.ReportRepository
	spending repository.SpendingRepository
}

func NewReportsService(repo repository.ReportRepository, spending repository.SpendingRepository) ReportsService {
	return &reportsService{repo: repo, spending: spending}
}

func (s *reportsService) GetAll(ctx context.Context, userID uuid.UUID) ([]entity.Report, error) {
	return s.repo.GetByUser(ctx, userID)
}

// Generate rolls the user's spending over the requested period into a new
// stored report.
func (s *reportsService) Generate(ctx context.Context, userID uuid.UUID, req entity.GenerateReportRequest) (*entity.Report, error) {
	start := time.Unix(0, 0)
	if req.StartDate != nil {
		start = *req.StartDate
	}
	end := time.Now()
	if req.EndDate != nil {
		end = *req.EndDate
	}

	entries, err := s.spending.GetByUserAndPeriod(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get spending for report: %w", err)
	}

	var total float64
	for _, e := range entries {
		total += e.Amount
	}

	reportType := req.Type
	if reportType == "" {
		reportType = "spending"
	}
	title := strings.ToUpper(reportType[:1]) + reportType[1:]
	subtitle := time.Now().Format("1/2/2006")
	if req.StartDate != nil && req.EndDate != nil {
		subtitle = utils.FormatPeriod(*req.StartDate, *req.EndDate)
	}

	report := &entity.Report{
		UserID: userID,
		Type:   reportType,
		Title:  fmt.Sprintf("%s Report - %s", title, subtitle),
		Data: entity.ReportData{
			TotalSpending: total,
			EntryCount:    len(entries),
			Period: entity.ReportPeriod{
				StartDate: req.StartDate,
				EndDate:   req.EndDate,
			},
		},
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *reportsService) GetDownload(ctx context.Context, id, userID uuid.UUID) (*entity.ReportDownload, error) {
	report, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, fmt.Errorf("report not found")
	}

	return &entity.ReportDownload{
		Report:      *report,
		DownloadURL: fmt.Sprintf("/api/reports/%s/file", report.ID),
	}, nil
}
