package services

import (
	"context"

	"github.com/SscSPs/procedure_control_app/internal/core/domain"
)

// Fixed download names for the generated report files.
const (
	CSVExportFilename         = "relatorio_procedimentos.csv"
	SpreadsheetExportFilename = "relatorio_procedimentos.xls"
	PDFExportFilename         = "relatorio_procedimentos.pdf"
)

// ExportSvc defines the report file generators. Each operation filters
// the stored records with the given criteria and renders the result.
type ExportSvc interface {
	// ExportCSV renders a comma-delimited UTF-8 file with a BOM prefix.
	ExportCSV(ctx context.Context, criteria domain.FilterCriteria) ([]byte, error)

	// ExportSpreadsheet renders a semicolon-delimited file with
	// decimal-comma values, suited to pt-BR spreadsheet imports.
	ExportSpreadsheet(ctx context.Context, criteria domain.FilterCriteria) ([]byte, error)

	// ExportPDF renders the landscape report document. The actor is named
	// in the generated-by line.
	ExportPDF(ctx context.Context, criteria domain.FilterCriteria, actorUserID string) ([]byte, error)
}
