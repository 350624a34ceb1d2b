package export

import (
	"encoding/json"
	"io"

	"github.com/locarlabs/datajud/internal/core/domain"
)

// WriteJSON prints each record as an indented JSON document. It is the
// default output when no export destination was requested.
func WriteJSON(w io.Writer, records []domain.CaseRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
