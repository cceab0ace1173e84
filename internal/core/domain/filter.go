package domain

import "strings"

// FilterCriteria captures the dashboard filter controls. Empty fields match
// everything; set fields combine conjunctively.
type FilterCriteria struct {
	Keyword       string // case-insensitive substring over name/region/state/unit
	StartDate     string // inclusive YYYY-MM-DD lower bound
	EndDate       string // inclusive YYYY-MM-DD upper bound
	Region        string
	State         string
	HospitalUnit  string
	ProcedureName string
	CreatedBy     string
}

// IsZero reports whether no criterion is active.
func (c FilterCriteria) IsZero() bool {
	return c == FilterCriteria{}
}

// Matches reports whether the procedure satisfies every active criterion.
func (c FilterCriteria) Matches(p Procedure) bool {
	if c.Keyword != "" {
		kw := strings.ToLower(c.Keyword)
		if !strings.Contains(strings.ToLower(p.ProcedureName), kw) &&
			!strings.Contains(strings.ToLower(p.Region), kw) &&
			!strings.Contains(strings.ToLower(p.State), kw) &&
			!strings.Contains(strings.ToLower(p.HospitalUnit), kw) {
			return false
		}
	}
	// Lexicographic comparison is safe for the fixed-width date format.
	if c.StartDate != "" && p.Date < c.StartDate {
		return false
	}
	if c.EndDate != "" && p.Date > c.EndDate {
		return false
	}
	if c.Region != "" && p.Region != c.Region {
		return false
	}
	if c.State != "" && p.State != c.State {
		return false
	}
	if c.HospitalUnit != "" && p.HospitalUnit != c.HospitalUnit {
		return false
	}
	if c.ProcedureName != "" && p.ProcedureName != c.ProcedureName {
		return false
	}
	if c.CreatedBy != "" && p.CreatedBy != c.CreatedBy {
		return false
	}
	return true
}

// Apply returns the order-preserving subset of procedures matching the
// criteria. The input slice is never mutated; the result is always non-nil.
func (c FilterCriteria) Apply(procedures []Procedure) []Procedure {
	filtered := make([]Procedure, 0, len(procedures))
	for _, p := range procedures {
		if c.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
