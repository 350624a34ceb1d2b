package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/locarlabs/datajud/internal/core/domain"
)

// ExcelSink writes the record set as a single-sheet xlsx workbook.
type ExcelSink struct {
	Path string
}

func (ExcelSink) Name() string { return "excel" }

func (s ExcelSink) Write(ctx context.Context, records []domain.CaseRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}

	for i, r := range records {
		vals := rowValues(r)
		row := make([]any, len(vals))
		for j, v := range vals {
			row[j] = v
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("write xlsx row: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write xlsx row: %w", err)
		}
	}

	if err := f.SaveAs(s.Path); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
