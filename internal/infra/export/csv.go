package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/locarlabs/datajud/internal/core/domain"
)

// CSVSink writes the record set as a comma-delimited file with a header row.
type CSVSink struct {
	Path string
}

func (CSVSink) Name() string { return "csv" }

func (s CSVSink) Write(ctx context.Context, records []domain.CaseRecord) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	w := csv.NewWriter(f)
	err = w.Write(columns)
	for _, r := range records {
		if err != nil {
			break
		}
		err = w.Write(rowValues(r))
	}
	if err == nil {
		w.Flush()
		err = w.Error()
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
