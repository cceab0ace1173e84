package domain

import "sort"

// FilterOptions lists the distinct values available for the dashboard
// filter dropdowns. Regions and States are the fixed catalogs; the rest
// are collected from stored procedures.
type FilterOptions struct {
	Regions        []string `json:"regions"`
	States         []string `json:"states"`
	HospitalUnits  []string `json:"hospitalUnits"`
	ProcedureNames []string `json:"procedureNames"`
	Creators       []string `json:"creators"`
}

// CollectFilterOptions derives the dropdown catalogs from the given
// procedures. Collected values are deduplicated and sorted; empty
// strings are skipped.
func CollectFilterOptions(procedures []Procedure) FilterOptions {
	units := map[string]struct{}{}
	names := map[string]struct{}{}
	creators := map[string]struct{}{}
	for _, p := range procedures {
		if p.HospitalUnit != "" {
			units[p.HospitalUnit] = struct{}{}
		}
		if p.ProcedureName != "" {
			names[p.ProcedureName] = struct{}{}
		}
		if p.CreatedBy != "" {
			creators[p.CreatedBy] = struct{}{}
		}
	}
	return FilterOptions{
		Regions:        append([]string(nil), Regions...),
		States:         append([]string(nil), States...),
		HospitalUnits:  sortedKeys(units),
		ProcedureNames: sortedKeys(names),
		Creators:       sortedKeys(creators),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
