package services

import (
	"context"

	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procedure_control_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procedure_control_app/internal/core/ports/services"
)

// reportingService implements the ReportingSvc interface. Every operation
// loads the full collection, filters it, and aggregates in memory; the
// record volumes of a per-clinic deployment stay small enough for that.
type reportingService struct {
	BaseService
	procedureRepo portsrepo.ProcedureRepository
}

// NewReportingService creates a new reporting service with the provided dependencies
func NewReportingService(procedureRepo portsrepo.ProcedureRepository) portssvc.ReportingSvc {
	return &reportingService{procedureRepo: procedureRepo}
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) filtered(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Procedure, error) {
	procedures, err := s.procedureRepo.FindProcedures(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load procedures for reporting")
		return nil, err
	}
	return criteria.Apply(procedures), nil
}

// DashboardSummary computes the six dashboard tile totals.
func (s *reportingService) DashboardSummary(ctx context.Context, criteria domain.FilterCriteria) (*domain.DashboardTotals, error) {
	procedures, err := s.filtered(ctx, criteria)
	if err != nil {
		return nil, err
	}
	totals := domain.Summarize(procedures)
	return &totals, nil
}

// RegionSeries computes per-region value totals in first-appearance order.
func (s *reportingService) RegionSeries(ctx context.Context, criteria domain.FilterCriteria) ([]domain.RegionTotals, error) {
	procedures, err := s.filtered(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return domain.SummarizeByRegion(procedures), nil
}

// DailySeries computes paid-value totals per day, dates ascending.
func (s *reportingService) DailySeries(ctx context.Context, criteria domain.FilterCriteria) ([]domain.DailyTotal, error) {
	procedures, err := s.filtered(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return domain.SummarizeByDate(procedures), nil
}

// MonthlySeries computes paid-value totals per month, months ascending.
func (s *reportingService) MonthlySeries(ctx context.Context, criteria domain.FilterCriteria) ([]domain.MonthlyTotal, error) {
	procedures, err := s.filtered(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return domain.SummarizeByMonth(procedures), nil
}
