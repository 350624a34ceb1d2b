// Package pipeline drives the paginated retrieval of case records across
// tribunals and merges the results into one deduplicated set.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/locarlabs/datajud/internal/core/classify"
	"github.com/locarlabs/datajud/internal/core/domain"
	"github.com/locarlabs/datajud/internal/infra/datajud"
	"github.com/locarlabs/datajud/internal/metrics"
)

const (
	// DefaultPageSize matches the upstream page size of 100 hits.
	DefaultPageSize = 100

	// DefaultMaxPages caps pagination per tribunal.
	DefaultMaxPages = 25
)

// Searcher is the transport dependency of the fetch loop.
type Searcher interface {
	Search(ctx context.Context, tribunal string, page int, body datajud.SearchRequest) (*domain.SearchResponse, error)
}

// Config drives one aggregation run.
type Config struct {
	PartyName     string
	PartyDocument string
	MaxPages      int
	PageSize      int

	// Since drops hits distributed strictly before this date. The zero
	// value disables the filter.
	Since time.Time

	Vocabulary classify.Vocabulary
}

// Fetcher pages through one tribunal's search results.
type Fetcher struct {
	client Searcher
	cfg    Config
}

// NewFetcher creates a fetcher, applying pagination defaults.
func NewFetcher(client Searcher, cfg Config) *Fetcher {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	return &Fetcher{client: client, cfg: cfg}
}

// FetchAll collects every matching case from one tribunal, in upstream
// order across ascending pages. A transport failure ends this tribunal's
// pagination with whatever accumulated; it never fails the run.
//
// Pagination stops on an empty page, at the page cap, or when a page comes
// back shorter than the page size. The short-page check assumes such a page
// is the last one, so a tribunal whose result count is an exact multiple of
// the page size stops one page early. Kept for upstream compatibility.
func (f *Fetcher) FetchAll(ctx context.Context, tribunal string) []domain.CaseRecord {
	var records []domain.CaseRecord

	for page := 0; page < f.cfg.MaxPages; page++ {
		body := datajud.PartyQuery(f.cfg.PartyName, f.cfg.PartyDocument, f.cfg.PageSize, page*f.cfg.PageSize)

		resp, err := f.client.Search(ctx, tribunal, page, body)
		if err != nil {
			metrics.SearchErrors.WithLabelValues(tribunal).Inc()
			slog.Warn("Search failed, stopping tribunal pagination",
				"tribunal", strings.ToUpper(tribunal), "page", page+1, "error", err)
			break
		}
		metrics.PagesFetched.WithLabelValues(tribunal).Inc()

		hits := resp.Hits.Hits
		if len(hits) == 0 {
			break
		}

		for _, hit := range hits {
			if f.skipByDate(hit.Source.DataDistribuicao) {
				continue
			}
			records = append(records, f.record(hit.Source, tribunal))
		}

		if len(hits) < f.cfg.PageSize {
			break
		}
	}

	return records
}

// skipByDate drops hits distributed strictly before the cutoff. Missing or
// unparsable dates keep the hit (fail-open); a hit dated exactly on the
// cutoff is retained.
func (f *Fetcher) skipByDate(raw string) bool {
	if f.cfg.Since.IsZero() {
		return false
	}
	dt, ok := domain.ParseDate(raw)
	if !ok {
		return false
	}
	return dt.Before(f.cfg.Since)
}

func (f *Fetcher) record(src domain.Source, tribunal string) domain.CaseRecord {
	res := f.cfg.Vocabulary.Classify(src.Movimentos)
	return domain.CaseRecord{
		CaseID:              src.NumeroProcesso,
		Tribunal:            strings.ToUpper(tribunal),
		Degree:              src.Grau,
		ClassLabel:          src.ClasseProcessual,
		Subjects:            src.JoinedSubjects(),
		DecidingBody:        src.OrgaoJulgador.NomeOrgao,
		Status:              src.SituacaoProcessual,
		Parties:             src.JoinedParties(),
		DistributionDate:    src.DataDistribuicao,
		MovementCount:       len(src.Movimentos),
		RelevantDeadlines:   strings.Join(res.Deadlines, "\n"),
		LastDecisionSummary: res.LastDecision,
		InExecutionPhase:    res.InExecution,
	}
}
