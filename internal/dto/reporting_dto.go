package dto

import (
	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse carries the six dashboard tile totals.
type DashboardSummaryResponse struct {
	TotalQtyPerformed   int64           `json:"totalQtyPerformed"`
	TotalQtyBilled      int64           `json:"totalQtyBilled"`
	TotalQtyPaid        int64           `json:"totalQtyPaid"`
	TotalValuePerformed decimal.Decimal `json:"totalValuePerformed"`
	TotalValueBilled    decimal.Decimal `json:"totalValueBilled"`
	TotalValuePaid      decimal.Decimal `json:"totalValuePaid"`
}

// ToDashboardSummaryResponse converts domain totals to the response DTO.
func ToDashboardSummaryResponse(t domain.DashboardTotals) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalQtyPerformed:   t.QtyPerformed,
		TotalQtyBilled:      t.QtyBilled,
		TotalQtyPaid:        t.QtyPaid,
		TotalValuePerformed: t.ValuePerformed,
		TotalValueBilled:    t.ValueBilled,
		TotalValuePaid:      t.ValuePaid,
	}
}

// RegionTotalsResponse is one bar-chart row.
type RegionTotalsResponse struct {
	Region         string          `json:"region"`
	ValuePerformed decimal.Decimal `json:"valuePerformed"`
	ValueBilled    decimal.Decimal `json:"valueBilled"`
	ValuePaid      decimal.Decimal `json:"valuePaid"`
}

// RegionSeriesResponse wraps the per-region chart series.
type RegionSeriesResponse struct {
	Rows []RegionTotalsResponse `json:"rows"`
}

// ToRegionSeriesResponse converts domain region totals to the response DTO.
func ToRegionSeriesResponse(rows []domain.RegionTotals) RegionSeriesResponse {
	out := make([]RegionTotalsResponse, len(rows))
	for i, r := range rows {
		out[i] = RegionTotalsResponse{
			Region:         r.Region,
			ValuePerformed: r.ValuePerformed,
			ValueBilled:    r.ValueBilled,
			ValuePaid:      r.ValuePaid,
		}
	}
	return RegionSeriesResponse{Rows: out}
}

// DailyTotalResponse is one line-chart point.
type DailyTotalResponse struct {
	Date      string          `json:"date"`
	ValuePaid decimal.Decimal `json:"valuePaid"`
}

// DailySeriesResponse wraps the paid-value-over-time chart series.
type DailySeriesResponse struct {
	Rows []DailyTotalResponse `json:"rows"`
}

// ToDailySeriesResponse converts domain daily totals to the response DTO.
func ToDailySeriesResponse(rows []domain.DailyTotal) DailySeriesResponse {
	out := make([]DailyTotalResponse, len(rows))
	for i, r := range rows {
		out[i] = DailyTotalResponse{Date: r.Date, ValuePaid: r.ValuePaid}
	}
	return DailySeriesResponse{Rows: out}
}

// MonthlyTotalResponse is one monthly bar-chart row.
type MonthlyTotalResponse struct {
	Month     string          `json:"month"`
	ValuePaid decimal.Decimal `json:"valuePaid"`
}

// MonthlySeriesResponse wraps the paid-value-per-month chart series.
type MonthlySeriesResponse struct {
	Rows []MonthlyTotalResponse `json:"rows"`
}

// ToMonthlySeriesResponse converts domain monthly totals to the response DTO.
func ToMonthlySeriesResponse(rows []domain.MonthlyTotal) MonthlySeriesResponse {
	out := make([]MonthlyTotalResponse, len(rows))
	for i, r := range rows {
		out[i] = MonthlyTotalResponse{Month: r.Month, ValuePaid: r.ValuePaid}
	}
	return MonthlySeriesResponse{Rows: out}
}
