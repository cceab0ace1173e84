package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/procedure_control_app/internal/apperrors"
	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procedure_control_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procedure_control_app/internal/core/ports/services"
	"github.com/SscSPs/procedure_control_app/internal/utils"
	"github.com/go-pdf/fpdf"
)

// utf8BOM lets Excel detect the encoding of the comma-delimited export.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// exportHeaders is the column order shared by both delimited exports.
var exportHeaders = []string{
	"ID",
	"Data",
	"Região",
	"Estado",
	"Unidade Hospitalar",
	"Nome do Procedimento",
	"Registrado Por",
	"Última Alteração Por",
	"Qtd. Realizados",
	"Qtd. Faturados",
	"Qtd. Pagos",
	"Valor Realizado",
	"Valor Faturado",
	"Valor Pago",
	"Data Alteração",
}

// exportService implements the ExportSvc interface
type exportService struct {
	BaseService
	procedureRepo portsrepo.ProcedureRepository
	userRepo      portsrepo.UserRepository
	now           func() time.Time
}

// NewExportService creates a new export service with the provided dependencies
func NewExportService(procedureRepo portsrepo.ProcedureRepository, userRepo portsrepo.UserRepository) portssvc.ExportSvc {
	return &exportService{
		procedureRepo: procedureRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

// Ensure exportService implements the ExportSvc interface
var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) filtered(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Procedure, error) {
	procedures, err := s.procedureRepo.FindProcedures(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load procedures for export")
		return nil, err
	}
	return criteria.Apply(procedures), nil
}

// ExportCSV renders a comma-delimited UTF-8 file with a BOM prefix. Dates
// stay in the stored YYYY-MM-DD form and values use a dot decimal separator
// so the file round-trips through generic CSV tooling.
func (s *exportService) ExportCSV(ctx context.Context, criteria domain.FilterCriteria) ([]byte, error) {
	procedures, err := s.filtered(ctx, criteria)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range procedures {
		if err := w.Write(csvRow(&procedures[i])); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRow(p *domain.Procedure) []string {
	return []string{
		p.ProcedureID,
		p.Date,
		p.Region,
		p.State,
		p.HospitalUnit,
		p.ProcedureName,
		orDash(p.CreatedBy),
		orDash(p.LastModifiedBy),
		strconv.FormatInt(p.QtyPerformed, 10),
		strconv.FormatInt(p.QtyBilled, 10),
		strconv.FormatInt(p.QtyPaid, 10),
		p.ValuePerformed.StringFixed(2),
		p.ValueBilled.StringFixed(2),
		p.ValuePaid.StringFixed(2),
		p.LastModifiedAt.Format("2006-01-02 15:04"),
	}
}

// ExportSpreadsheet renders a semicolon-delimited file with DD/MM/YYYY dates
// and decimal-comma values, which pt-BR Excel opens with correct columns and
// numbers without an import wizard.
func (s *exportService) ExportSpreadsheet(ctx context.Context, criteria domain.FilterCriteria) ([]byte, error) {
	procedures, err := s.filtered(ctx, criteria)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	w.UseCRLF = true

	if err := w.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet header: %w", err)
	}
	for i := range procedures {
		if err := w.Write(spreadsheetRow(&procedures[i])); err != nil {
			return nil, fmt.Errorf("failed to write spreadsheet row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func spreadsheetRow(p *domain.Procedure) []string {
	return []string{
		p.ProcedureID,
		utils.FormatBRDate(p.Date),
		p.Region,
		p.State,
		p.HospitalUnit,
		p.ProcedureName,
		orDash(p.CreatedBy),
		orDash(p.LastModifiedBy),
		strconv.FormatInt(p.QtyPerformed, 10),
		strconv.FormatInt(p.QtyBilled, 10),
		strconv.FormatInt(p.QtyPaid, 10),
		utils.FormatBRNumber(p.ValuePerformed),
		utils.FormatBRNumber(p.ValueBilled),
		utils.FormatBRNumber(p.ValuePaid),
		p.LastModifiedAt.Format("02/01/2006 15:04"),
	}
}

// pdfColumn pairs a table header with its width in millimetres.
type pdfColumn struct {
	header string
	width  float64
}

// Twelve data columns sized for A4 landscape (277mm printable width).
var pdfColumns = []pdfColumn{
	{"Data", 19},
	{"Região", 22},
	{"UF", 9},
	{"Unidade Hospitalar", 42},
	{"Procedimento", 50},
	{"Registrado Por", 27},
	{"Qtd. Real.", 14},
	{"Qtd. Fat.", 14},
	{"Qtd. Pagos", 14},
	{"Valor Realizado", 22},
	{"Valor Faturado", 22},
	{"Valor Pago", 22},
}

// ExportPDF renders the landscape report document: title, generation line,
// active-filter summary, the record table with a totals footer, and a
// closing summary table.
func (s *exportService) ExportPDF(ctx context.Context, criteria domain.FilterCriteria, actorUserID string) ([]byte, error) {
	procedures, err := s.filtered(ctx, criteria)
	if err != nil {
		return nil, err
	}

	actorName := ""
	if actorUserID != "" {
		actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve export actor")
			return nil, err
		}
		if actor != nil {
			actorName = actor.Name
		}
	}

	totals := domain.Summarize(procedures)

	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AliasNbPages("")
	pdf.SetAutoPageBreak(true, 18)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 8,
			fmt.Sprintf("Página %d de {nb}", pdf.PageNo()),
			"", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(33, 33, 33)
	pdf.CellFormat(0, 10, tr("Relatório de Procedimentos"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	generated := "Gerado em: " + s.now().Format("02/01/2006 15:04")
	if actorName != "" {
		generated += " por " + actorName
	}
	pdf.CellFormat(0, 5, tr(generated), "", 1, "L", false, 0, "")
	pdf.MultiCell(0, 5, tr("Filtros: "+describeFilters(criteria)), "", "L", false)
	pdf.Ln(3)

	s.renderPDFTable(pdf, tr, procedures, totals)
	pdf.Ln(6)
	s.renderPDFSummary(pdf, tr, totals)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.LogError(ctx, err, "Failed to render pdf")
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *exportService) renderPDFTable(pdf *fpdf.Fpdf, tr func(string) string, procedures []domain.Procedure, totals domain.DashboardTotals) {
	headerRow := func() {
		pdf.SetFont("Helvetica", "B", 7.5)
		pdf.SetFillColor(38, 70, 83)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, tr(col.header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	headerRow()

	pdf.SetFont("Helvetica", "", 7.5)
	pdf.SetTextColor(33, 33, 33)
	fill := false
	for i := range procedures {
		p := &procedures[i]
		if pdf.GetY() > 180 {
			pdf.AddPage()
			headerRow()
			pdf.SetFont("Helvetica", "", 7.5)
			pdf.SetTextColor(33, 33, 33)
		}
		if fill {
			pdf.SetFillColor(240, 244, 246)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		cells := []struct {
			text  string
			align string
		}{
			{utils.FormatBRDate(p.Date), "C"},
			{p.Region, "L"},
			{p.State, "C"},
			{truncateCell(p.HospitalUnit, 32), "L"},
			{truncateCell(p.ProcedureName, 39), "L"},
			{truncateCell(registrant(p), 20), "L"},
			{utils.FormatBRQuantity(p.QtyPerformed), "R"},
			{utils.FormatBRQuantity(p.QtyBilled), "R"},
			{utils.FormatBRQuantity(p.QtyPaid), "R"},
			{utils.FormatBRCurrency(p.ValuePerformed), "R"},
			{utils.FormatBRCurrency(p.ValueBilled), "R"},
			{utils.FormatBRCurrency(p.ValuePaid), "R"},
		}
		for j, cell := range cells {
			pdf.CellFormat(pdfColumns[j].width, 6, tr(cell.text), "1", 0, cell.align, true, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	// Totals footer: label spans the six descriptive columns.
	labelWidth := 0.0
	for _, col := range pdfColumns[:6] {
		labelWidth += col.width
	}
	pdf.SetFont("Helvetica", "B", 7.5)
	pdf.SetFillColor(229, 235, 238)
	pdf.CellFormat(labelWidth, 7, "TOTAIS", "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColumns[6].width, 7, utils.FormatBRQuantity(totals.QtyPerformed), "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColumns[7].width, 7, utils.FormatBRQuantity(totals.QtyBilled), "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColumns[8].width, 7, utils.FormatBRQuantity(totals.QtyPaid), "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColumns[9].width, 7, tr(utils.FormatBRCurrency(totals.ValuePerformed)), "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColumns[10].width, 7, tr(utils.FormatBRCurrency(totals.ValueBilled)), "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColumns[11].width, 7, tr(utils.FormatBRCurrency(totals.ValuePaid)), "1", 0, "R", true, 0, "")
	pdf.Ln(-1)
}

func (s *exportService) renderPDFSummary(pdf *fpdf.Fpdf, tr func(string) string, totals domain.DashboardTotals) {
	if pdf.GetY() > 150 {
		pdf.AddPage()
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(33, 33, 33)
	pdf.CellFormat(0, 8, tr("Resumo Geral"), "", 1, "L", false, 0, "")

	rows := []struct {
		label string
		value string
	}{
		{"Procedimentos Realizados", utils.FormatBRQuantity(totals.QtyPerformed)},
		{"Procedimentos Faturados", utils.FormatBRQuantity(totals.QtyBilled)},
		{"Procedimentos Pagos", utils.FormatBRQuantity(totals.QtyPaid)},
		{"Valor Realizado", utils.FormatBRCurrency(totals.ValuePerformed)},
		{"Valor Faturado", utils.FormatBRCurrency(totals.ValueBilled)},
		{"Valor Pago", utils.FormatBRCurrency(totals.ValuePaid)},
	}
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		pdf.SetFillColor(240, 244, 246)
		pdf.CellFormat(70, 7, tr(row.label), "1", 0, "L", true, 0, "")
		pdf.CellFormat(45, 7, tr(row.value), "1", 1, "R", false, 0, "")
	}
}

// describeFilters renders the active criteria as a single human-readable
// line for the report header.
func describeFilters(c domain.FilterCriteria) string {
	if c.IsZero() {
		return "nenhum"
	}
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}
	add("busca", c.Keyword)
	if c.StartDate != "" || c.EndDate != "" {
		from := c.StartDate
		if from == "" {
			from = "início"
		} else {
			from = utils.FormatBRDate(from)
		}
		to := c.EndDate
		if to == "" {
			to = "hoje"
		} else {
			to = utils.FormatBRDate(to)
		}
		parts = append(parts, "período: "+from+" a "+to)
	}
	add("região", c.Region)
	add("UF", c.State)
	add("unidade", c.HospitalUnit)
	add("procedimento", c.ProcedureName)
	add("registrado por", c.CreatedBy)
	return strings.Join(parts, "; ")
}

// orDash substitutes a dash for empty free-text cells.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// registrant is the account shown in the "Registrado Por" column, falling
// back to the last editor for records imported without a creator.
func registrant(p *domain.Procedure) string {
	if p.CreatedBy != "" {
		return p.CreatedBy
	}
	return orDash(p.LastModifiedBy)
}

func truncateCell(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
