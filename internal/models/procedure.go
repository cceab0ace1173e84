package models

import (
	"github.com/shopspring/decimal"
)

// Procedure is the persistence model for one procedure record.
// The date is stored as a YYYY-MM-DD string; values are NUMERIC(14,2).
type Procedure struct {
	ProcedureID    string          `db:"procedure_id" json:"id"`
	Date           string          `db:"procedure_date" json:"date"`
	Region         string          `db:"region" json:"region"`
	State          string          `db:"state" json:"state"`
	HospitalUnit   string          `db:"hospital_unit" json:"hospitalUnit"`
	PatientName    string          `db:"patient_name" json:"patientName"`
	ProcedureName  string          `db:"procedure_name" json:"procedureName"`
	QtyPerformed   int64           `db:"qty_performed" json:"qtyPerformed"`
	QtyBilled      int64           `db:"qty_billed" json:"qtyBilled"`
	QtyPaid        int64           `db:"qty_paid" json:"qtyPaid"`
	ValuePerformed decimal.Decimal `db:"value_performed" json:"valuePerformed"`
	ValueBilled    decimal.Decimal `db:"value_billed" json:"valueBilled"`
	ValuePaid      decimal.Decimal `db:"value_paid" json:"valuePaid"`
	AuditFields
}
