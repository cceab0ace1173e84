package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() domain.ProcedureInput {
	return domain.ProcedureInput{
		Date:           "2026-08-15",
		Region:         "Sudeste",
		State:          "SP",
		HospitalUnit:   "Hospital Central",
		PatientName:    "Maria dos Santos",
		ProcedureName:  "Hemodiálise",
		ValuePerformed: decimal.RequireFromString("225.00"),
	}
}

func TestValidateProcedureInput(t *testing.T) {
	now := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mutate    func(*domain.ProcedureInput)
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid input has no errors",
			mutate: func(in *domain.ProcedureInput) {},
		},
		{
			name:      "blank procedure name",
			mutate:    func(in *domain.ProcedureInput) { in.ProcedureName = "   " },
			wantField: "procedureName",
			wantMsg:   "Este campo é obrigatório.",
		},
		{
			name:      "blank hospital unit",
			mutate:    func(in *domain.ProcedureInput) { in.HospitalUnit = "" },
			wantField: "hospitalUnit",
			wantMsg:   "Este campo é obrigatório.",
		},
		{
			name:      "blank patient name",
			mutate:    func(in *domain.ProcedureInput) { in.PatientName = "" },
			wantField: "patientName",
			wantMsg:   "Este campo é obrigatório.",
		},
		{
			name:      "missing date",
			mutate:    func(in *domain.ProcedureInput) { in.Date = "" },
			wantField: "date",
			wantMsg:   "Este campo é obrigatório.",
		},
		{
			name:      "malformed date",
			mutate:    func(in *domain.ProcedureInput) { in.Date = "15/08/2026" },
			wantField: "date",
			wantMsg:   "Data inválida. Use o formato AAAA-MM-DD.",
		},
		{
			name:      "future date",
			mutate:    func(in *domain.ProcedureInput) { in.Date = "2026-08-21" },
			wantField: "date",
			wantMsg:   "A data não pode ser no futuro.",
		},
		{
			name:      "unknown region",
			mutate:    func(in *domain.ProcedureInput) { in.Region = "Centro-Sul" },
			wantField: "region",
			wantMsg:   "Região desconhecida.",
		},
		{
			name:      "unknown state",
			mutate:    func(in *domain.ProcedureInput) { in.State = "XX" },
			wantField: "state",
			wantMsg:   "Estado (UF) desconhecido.",
		},
		{
			name:      "negative value",
			mutate:    func(in *domain.ProcedureInput) { in.ValuePerformed = decimal.RequireFromString("-0.01") },
			wantField: "valuePerformed",
			wantMsg:   "O valor não pode ser negativo.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := domain.ValidateProcedureInput(in, now)

			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			require.True(t, errs.Has(tt.wantField), "expected error on %s", tt.wantField)
			assert.Equal(t, tt.wantMsg, errs.ByField()[tt.wantField])
		})
	}
}

func TestValidateProcedureInput_SameDayAllowed(t *testing.T) {
	// 2026-08-20 submitted late in the evening is still "today".
	now := time.Date(2026, 8, 20, 23, 59, 0, 0, time.UTC)
	in := validInput()
	in.Date = "2026-08-20"

	errs := domain.ValidateProcedureInput(in, now)

	assert.False(t, errs.Has("date"))
}

func TestValidateProcedureInput_ZeroValueAllowed(t *testing.T) {
	in := validInput()
	in.ValuePerformed = decimal.Zero

	errs := domain.ValidateProcedureInput(in, time.Now())

	assert.Empty(t, errs)
}

func TestValidateProcedureInput_CollectsAllErrors(t *testing.T) {
	in := domain.ProcedureInput{ValuePerformed: decimal.RequireFromString("-1")}

	errs := domain.ValidateProcedureInput(in, time.Now())

	for _, field := range []string{"procedureName", "hospitalUnit", "patientName", "date", "region", "state", "valuePerformed"} {
		assert.True(t, errs.Has(field), "expected error on %s", field)
	}
}
