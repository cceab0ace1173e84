package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FieldError is a field-level validation failure with a user-facing message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the ordered result of validating a candidate record.
// An empty list signals a valid record. Validation never returns an error
// value; every problem is reported as a FieldError.
type FieldErrors []FieldError

// ByField flattens the list into a field→message mapping for API responses.
// Later errors on the same field do not overwrite earlier ones.
func (fe FieldErrors) ByField() map[string]string {
	m := make(map[string]string, len(fe))
	for _, e := range fe {
		if _, exists := m[e.Field]; !exists {
			m[e.Field] = e.Message
		}
	}
	return m
}

// Has reports whether the named field carries an error.
func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

// ProcedureInput is the user-editable portion of a procedure record as
// submitted by the form, before the billed/paid quantities are derived.
type ProcedureInput struct {
	Date           string
	Region         string
	State          string
	HospitalUnit   string
	PatientName    string
	ProcedureName  string
	ValuePerformed decimal.Decimal
}

const msgRequired = "Este campo é obrigatório."

// ValidateProcedureInput checks the candidate record against the form rules:
// required fields must be non-empty after trimming, region/state must belong
// to the fixed lists, the date must parse and must not be after the current
// calendar day (same-day allowed, compared at day granularity), and the
// performed value must not be negative.
func ValidateProcedureInput(in ProcedureInput, now time.Time) FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(in.ProcedureName) == "" {
		errs = append(errs, FieldError{Field: "procedureName", Message: msgRequired})
	}
	if strings.TrimSpace(in.HospitalUnit) == "" {
		errs = append(errs, FieldError{Field: "hospitalUnit", Message: msgRequired})
	}
	if strings.TrimSpace(in.PatientName) == "" {
		errs = append(errs, FieldError{Field: "patientName", Message: msgRequired})
	}

	if strings.TrimSpace(in.Date) == "" {
		errs = append(errs, FieldError{Field: "date", Message: msgRequired})
	} else if parsed, err := time.Parse(DateLayout, in.Date); err != nil {
		errs = append(errs, FieldError{Field: "date", Message: "Data inválida. Use o formato AAAA-MM-DD."})
	} else {
		// Truncate both sides to day granularity to avoid timezone-boundary
		// false positives.
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
		if day.After(today) {
			errs = append(errs, FieldError{Field: "date", Message: "A data não pode ser no futuro."})
		}
	}

	if in.Region == "" {
		errs = append(errs, FieldError{Field: "region", Message: msgRequired})
	} else if !IsValidRegion(in.Region) {
		errs = append(errs, FieldError{Field: "region", Message: "Região desconhecida."})
	}
	if in.State == "" {
		errs = append(errs, FieldError{Field: "state", Message: msgRequired})
	} else if !IsValidState(in.State) {
		errs = append(errs, FieldError{Field: "state", Message: "Estado (UF) desconhecido."})
	}

	if in.ValuePerformed.IsNegative() {
		errs = append(errs, FieldError{Field: "valuePerformed", Message: "O valor não pode ser negativo."})
	}

	return errs
}
