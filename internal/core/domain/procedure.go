package domain

import "github.com/shopspring/decimal"

// DateLayout is the storage format for procedure dates. The fixed-width
// zero-padded form makes lexicographic comparison equivalent to calendar
// comparison, which the filter engine relies on.
const DateLayout = "2006-01-02"

// Regions lists the five Brazilian macro-regions a procedure can belong to.
var Regions = []string{
	"Centro-Oeste",
	"Nordeste",
	"Norte",
	"Sudeste",
	"Sul",
}

// States lists the 27 Brazilian federative unit codes.
var States = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS",
	"MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC",
	"SP", "SE", "TO",
}

// IsValidRegion reports whether region is one of the five fixed regions.
func IsValidRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}
	return false
}

// IsValidState reports whether state is one of the 27 UF codes.
func IsValidState(state string) bool {
	for _, s := range States {
		if s == state {
			return true
		}
	}
	return false
}

// Procedure represents one logged medical-procedure occurrence with its
// quantities and values at the three lifecycle stages (performed, billed,
// paid). One row records one occurrence: QtyPerformed is always 1 and the
// billed/paid pairs either mirror the performed pair or are zero.
type Procedure struct {
	ProcedureID    string          `json:"id"`   // Primary Key (UUID)
	Date           string          `json:"date"` // YYYY-MM-DD, no time component
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
	AuditFields
}

// Billed reports whether the record has been sent for billing.
func (p Procedure) Billed() bool {
	return p.QtyBilled > 0
}

// Paid reports whether payment has been received for the record.
func (p Procedure) Paid() bool {
	return p.QtyPaid > 0
}

// Month returns the YYYY-MM prefix of the procedure date.
func (p Procedure) Month() string {
	if len(p.Date) < 7 {
		return p.Date
	}
	return p.Date[:7]
}
