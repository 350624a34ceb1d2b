package export

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/locarlabs/datajud/internal/core/domain"
)

// TextSink writes the plain-text report, also used as the PDF fallback.
type TextSink struct {
	Path string
}

func (TextSink) Name() string { return "txt" }

func (s TextSink) Write(ctx context.Context, records []domain.CaseRecord) error {
	var b strings.Builder
	for i, r := range records {
		fmt.Fprintf(&b, "Processo #%d\n", i+1)
		vals := rowValues(r)
		for j, col := range columns {
			fmt.Fprintf(&b, "%s: %s\n", col, orDash(vals[j]))
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(s.Path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write txt: %w", err)
	}
	return nil
}
