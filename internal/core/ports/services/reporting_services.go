package services

import (
	"context"

	"github.com/SscSPs/procedure_control_app/internal/core/domain"
)

// ReportingSvc defines the dashboard aggregation operations. Every
// operation applies the given filter criteria before aggregating.
type ReportingSvc interface {
	// DashboardSummary computes the six dashboard tile totals.
	DashboardSummary(ctx context.Context, criteria domain.FilterCriteria) (*domain.DashboardTotals, error)

	// RegionSeries computes per-region value totals in first-appearance order.
	RegionSeries(ctx context.Context, criteria domain.FilterCriteria) ([]domain.RegionTotals, error)

	// DailySeries computes paid-value totals per day, dates ascending.
	DailySeries(ctx context.Context, criteria domain.FilterCriteria) ([]domain.DailyTotal, error)

	// MonthlySeries computes paid-value totals per month, months ascending.
	MonthlySeries(ctx context.Context, criteria domain.FilterCriteria) ([]domain.MonthlyTotal, error)
}
