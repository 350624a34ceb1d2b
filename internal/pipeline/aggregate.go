package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/locarlabs/datajud/internal/core/domain"
	"github.com/locarlabs/datajud/internal/metrics"
)

// Aggregator fans the fetcher out over a list of tribunals, sequentially,
// and merges the per-tribunal results.
type Aggregator struct {
	client Searcher
	cfg    Config
}

// NewAggregator creates an aggregator sharing one transport client across
// all tribunal queries.
func NewAggregator(client Searcher, cfg Config) *Aggregator {
	return &Aggregator{client: client, cfg: cfg}
}

// Run queries each tribunal in the order given and returns the merged,
// deduplicated record set. Codes are lower-cased and trimmed for the
// endpoint and reported upper-case. A tribunal contributing zero records,
// transport failure included, never aborts the remaining tribunals.
func (a *Aggregator) Run(ctx context.Context, tribunals []string) []domain.CaseRecord {
	runID := uuid.NewString()
	fetcher := NewFetcher(a.client, a.cfg)

	var all []domain.CaseRecord
	for _, tribunal := range tribunals {
		code := strings.ToLower(strings.TrimSpace(tribunal))
		if code == "" {
			continue
		}

		slog.Info("Querying tribunal", "run", runID, "tribunal", strings.ToUpper(code))
		found := fetcher.FetchAll(ctx, code)
		metrics.CasesFound.WithLabelValues(code).Add(float64(len(found)))
		slog.Info("Tribunal query finished",
			"run", runID, "tribunal", strings.ToUpper(code), "found", len(found))

		all = append(all, found...)
	}

	return Dedupe(all)
}

// Dedupe drops later duplicates of a (case, tribunal) pair. First
// occurrence wins; surviving records keep their relative order.
func Dedupe(records []domain.CaseRecord) []domain.CaseRecord {
	if len(records) == 0 {
		return records
	}

	seen := make(map[string]struct{}, len(records))
	out := make([]domain.CaseRecord, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r.Key()]; dup {
			continue
		}
		seen[r.Key()] = struct{}{}
		out = append(out, r)
	}
	return out
}
