package dto

import (
	"time"

	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveProcedureRequest carries the user-editable form fields of a procedure
// record. The billed/paid flags derive the billed/paid quantity and value
// pairs server-side; quantities are never submitted directly.
type SaveProcedureRequest struct {
	Date           string          `json:"date"`
	Region         string          `json:"region"`
	State          string          `json:"state"`
	HospitalUnit   string          `json:"hospitalUnit"`
	PatientName    string          `json:"patientName"`
	ProcedureName  string          `json:"procedureName"`
	ValuePerformed decimal.Decimal `json:"valuePerformed"`
	Billed         bool            `json:"billed"`
	Paid           bool            `json:"paid"`
}

// ToProcedureInput maps the request to the domain validator input.
func (r SaveProcedureRequest) ToProcedureInput() domain.ProcedureInput {
	return domain.ProcedureInput{
		Date:           r.Date,
		Region:         r.Region,
		State:          r.State,
		HospitalUnit:   r.HospitalUnit,
		PatientName:    r.PatientName,
		ProcedureName:  r.ProcedureName,
		ValuePerformed: r.ValuePerformed,
	}
}

// ListProceduresParams defines the shared filter query parameters accepted by
// the list, report and export endpoints.
type ListProceduresParams struct {
	Keyword       string `form:"keyword"`
	StartDate     string `form:"startDate"`
	EndDate       string `form:"endDate"`
	Region        string `form:"region" binding:"omitempty,br_region"`
	State         string `form:"state" binding:"omitempty,br_state"`
	HospitalUnit  string `form:"hospitalUnit"`
	ProcedureName string `form:"procedureName"`
	CreatedBy     string `form:"createdBy"`
}

// ToCriteria maps the query parameters to the domain filter criteria.
func (p ListProceduresParams) ToCriteria() domain.FilterCriteria {
	return domain.FilterCriteria{
		Keyword:       p.Keyword,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		Region:        p.Region,
		State:         p.State,
		HospitalUnit:  p.HospitalUnit,
		ProcedureName: p.ProcedureName,
		CreatedBy:     p.CreatedBy,
	}
}

// ProcedureResponse defines the data returned for a procedure record.
type ProcedureResponse struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	Region         string          `json:"region"`
	State          string          `json:"state"`
	HospitalUnit   string          `json:"hospitalUnit"`
	PatientName    string          `json:"patientName"`
	ProcedureName  string          `json:"procedureName"`
	QtyPerformed   int64           `json:"qtyPerformed"`
	QtyBilled      int64           `json:"qtyBilled"`
	QtyPaid        int64           `json:"qtyPaid"`
	ValuePerformed decimal.Decimal `json:"valuePerformed"`
	ValueBilled    decimal.Decimal `json:"valueBilled"`
	ValuePaid      decimal.Decimal `json:"valuePaid"`
	Billed         bool            `json:"billed"`
	Paid           bool            `json:"paid"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastModifiedAt time.Time       `json:"lastModifiedAt"`
	LastModifiedBy string          `json:"lastModifiedBy"`
}

// ToProcedureResponse converts a domain.Procedure to ProcedureResponse DTO.
func ToProcedureResponse(p *domain.Procedure) ProcedureResponse {
	return ProcedureResponse{
		ID:             p.ProcedureID,
		Date:           p.Date,
		Region:         p.Region,
		State:          p.State,
		HospitalUnit:   p.HospitalUnit,
		PatientName:    p.PatientName,
		ProcedureName:  p.ProcedureName,
		QtyPerformed:   p.QtyPerformed,
		QtyBilled:      p.QtyBilled,
		QtyPaid:        p.QtyPaid,
		ValuePerformed: p.ValuePerformed,
		ValueBilled:    p.ValueBilled,
		ValuePaid:      p.ValuePaid,
		Billed:         p.Billed(),
		Paid:           p.Paid(),
		CreatedAt:      p.CreatedAt,
		CreatedBy:      p.CreatedBy,
		LastModifiedAt: p.LastModifiedAt,
		LastModifiedBy: p.LastModifiedBy,
	}
}

// ListProceduresResponse wraps the filtered record list.
type ListProceduresResponse struct {
	Procedures []ProcedureResponse `json:"procedures"`
	Total      int                 `json:"total"`
}

// ToListProceduresResponse converts a slice of domain.Procedure to the list DTO.
func ToListProceduresResponse(procedures []domain.Procedure) ListProceduresResponse {
	responses := make([]ProcedureResponse, len(procedures))
	for i := range procedures {
		responses[i] = ToProcedureResponse(&procedures[i])
	}
	return ListProceduresResponse{Procedures: responses, Total: len(responses)}
}

// ProcedureOptionsResponse feeds the dashboard filter dropdowns and the
// procedure-name suggestion list.
type ProcedureOptionsResponse struct {
	Regions        []string `json:"regions"`
	States         []string `json:"states"`
	HospitalUnits  []string `json:"hospitalUnits"`
	ProcedureNames []string `json:"procedureNames"`
	Creators       []string `json:"creators"`
}

// ValidationErrorResponse maps field names to user-facing error messages.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}
