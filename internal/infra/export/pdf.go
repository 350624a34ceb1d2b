package export

import (
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/locarlabs/datajud/internal/core/domain"
)

// PDFSink renders a paginated report, one page per record. When rendering
// fails the plan runner substitutes the plain-text report.
type PDFSink struct {
	Path string
}

func (PDFSink) Name() string { return "pdf" }

func (s PDFSink) Write(ctx context.Context, records []domain.CaseRecord) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	// Core fonts are latin-1; translate the UTF-8 field values.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, r := range records {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr("Relatório de Processo"), "", 1, "C", false, 0, "")
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		vals := rowValues(r)
		for i, col := range columns {
			pdf.MultiCell(0, 6, tr(col+": "+orDash(vals[i])), "", "L", false)
		}
		pdf.Ln(2)
	}

	if err := pdf.OutputFileAndClose(s.Path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
