package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DashboardTotals accumulates the six numeric fields across a record set.
type DashboardTotals struct {
	QtyPerformed   int64           `json:"totalQtyPerformed"`
	QtyBilled      int64           `json:"totalQtyBilled"`
	QtyPaid        int64           `json:"totalQtyPaid"`
	ValuePerformed decimal.Decimal `json:"totalValuePerformed"`
	ValueBilled    decimal.Decimal `json:"totalValueBilled"`
	ValuePaid      decimal.Decimal `json:"totalValuePaid"`
}

// RegionTotals holds the per-region value sums feeding the bar chart.
type RegionTotals struct {
	Region         string          `json:"region"`
	ValuePerformed decimal.Decimal `json:"valuePerformed"`
	ValueBilled    decimal.Decimal `json:"valueBilled"`
	ValuePaid      decimal.Decimal `json:"valuePaid"`
}

// DailyTotal holds the paid value for one calendar date.
type DailyTotal struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	ValuePaid decimal.Decimal `json:"valuePaid"`
}

// MonthlyTotal holds the paid value for one YYYY-MM month.
type MonthlyTotal struct {
	Month     string          `json:"month"` // YYYY-MM
	ValuePaid decimal.Decimal `json:"valuePaid"`
}

// Summarize folds the whole record set into a single totals record.
// Decimal accumulation keeps currency sums exact at 2 minor digits.
func Summarize(procedures []Procedure) DashboardTotals {
	totals := DashboardTotals{
		ValuePerformed: decimal.Zero,
		ValueBilled:    decimal.Zero,
		ValuePaid:      decimal.Zero,
	}
	for _, p := range procedures {
		totals.QtyPerformed += p.QtyPerformed
		totals.QtyBilled += p.QtyBilled
		totals.QtyPaid += p.QtyPaid
		totals.ValuePerformed = totals.ValuePerformed.Add(p.ValuePerformed)
		totals.ValueBilled = totals.ValueBilled.Add(p.ValueBilled)
		totals.ValuePaid = totals.ValuePaid.Add(p.ValuePaid)
	}
	return totals
}

// SummarizeByRegion groups by region and sums the three value fields per
// group. Only regions present in the input produce a row, in order of first
// appearance; absent regions yield no zero rows.
func SummarizeByRegion(procedures []Procedure) []RegionTotals {
	index := make(map[string]int)
	rows := make([]RegionTotals, 0)
	for _, p := range procedures {
		i, ok := index[p.Region]
		if !ok {
			i = len(rows)
			index[p.Region] = i
			rows = append(rows, RegionTotals{
				Region:         p.Region,
				ValuePerformed: decimal.Zero,
				ValueBilled:    decimal.Zero,
				ValuePaid:      decimal.Zero,
			})
		}
		rows[i].ValuePerformed = rows[i].ValuePerformed.Add(p.ValuePerformed)
		rows[i].ValueBilled = rows[i].ValueBilled.Add(p.ValueBilled)
		rows[i].ValuePaid = rows[i].ValuePaid.Add(p.ValuePaid)
	}
	return rows
}

// SummarizeByDate groups by exact date and sums the paid value. Rows come
// back ascending by the underlying ISO date string so the series is
// chronological regardless of any display formatting.
func SummarizeByDate(procedures []Procedure) []DailyTotal {
	byDate := make(map[string]decimal.Decimal)
	for _, p := range procedures {
		byDate[p.Date] = byDate[p.Date].Add(p.ValuePaid)
	}
	rows := make([]DailyTotal, 0, len(byDate))
	for date, paid := range byDate {
		rows = append(rows, DailyTotal{Date: date, ValuePaid: paid})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// SummarizeByMonth groups by the YYYY-MM prefix of the date and sums the paid
// value, ascending by month key.
func SummarizeByMonth(procedures []Procedure) []MonthlyTotal {
	byMonth := make(map[string]decimal.Decimal)
	for _, p := range procedures {
		byMonth[p.Month()] = byMonth[p.Month()].Add(p.ValuePaid)
	}
	rows := make([]MonthlyTotal, 0, len(byMonth))
	for month, paid := range byMonth {
		rows = append(rows, MonthlyTotal{Month: month, ValuePaid: paid})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}
