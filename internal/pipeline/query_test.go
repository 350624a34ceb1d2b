package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/locarlabs/datajud/internal/core/classify"
	"github.com/locarlabs/datajud/internal/core/domain"
	"github.com/locarlabs/datajud/internal/infra/datajud"
)

// fakeSearcher serves canned pages per tribunal and records every call.
type fakeSearcher struct {
	pages map[string][][]domain.Hit          // tribunal -> pages of hits
	fail  map[string]map[int]*datajud.TransportError // tribunal -> page -> error
	calls []call
}

type call struct {
	tribunal string
	page     int
	size     int
	from     int
}

func (f *fakeSearcher) Search(ctx context.Context, tribunal string, page int, body datajud.SearchRequest) (*domain.SearchResponse, error) {
	f.calls = append(f.calls, call{tribunal: tribunal, page: page, size: body.Size, from: body.From})

	if errs, ok := f.fail[tribunal]; ok {
		if err, ok := errs[page]; ok {
			return nil, err
		}
	}

	var resp domain.SearchResponse
	if pages, ok := f.pages[tribunal]; ok && page < len(pages) {
		resp.Hits.Hits = pages[page]
	}
	return &resp, nil
}

func hit(caseID string, movements ...domain.MovementEntry) domain.Hit {
	return domain.Hit{Source: domain.Source{
		NumeroProcesso: caseID,
		Movimentos:     movements,
	}}
}

func hitDated(caseID, distributed string) domain.Hit {
	h := hit(caseID)
	h.Source.DataDistribuicao = distributed
	return h
}

func fullPage(prefix string, n int) []domain.Hit {
	hits := make([]domain.Hit, n)
	for i := range hits {
		hits[i] = hit(prefix + string(rune('a'+i%26)))
	}
	return hits
}

func testConfig() Config {
	return Config{
		PartyName:     "Empresa A",
		PartyDocument: "123",
		MaxPages:      3,
		PageSize:      2,
		Vocabulary:    classify.DefaultVocabulary(),
	}
}

func TestFetchAllStopsAtMaxPages(t *testing.T) {
	fake := &fakeSearcher{pages: map[string][][]domain.Hit{
		"tjpe": {fullPage("p0", 2), fullPage("p1", 2), fullPage("p2", 2), fullPage("p3", 2)},
	}}

	f := NewFetcher(fake, testConfig())
	records := f.FetchAll(context.Background(), "tjpe")

	if len(fake.calls) != 3 {
		t.Errorf("issued %d requests, want exactly max_pages=3", len(fake.calls))
	}
	if len(records) != 6 {
		t.Errorf("got %d records, want 6", len(records))
	}
	for i, c := range fake.calls {
		if c.from != i*2 || c.size != 2 {
			t.Errorf("call %d: from/size = %d/%d, want %d/2", i, c.from, c.size, i*2)
		}
	}
}

func TestFetchAllStopsOnEmptyPage(t *testing.T) {
	fake := &fakeSearcher{pages: map[string][][]domain.Hit{
		"tjpe": {fullPage("p0", 2), {}},
	}}

	f := NewFetcher(fake, testConfig())
	records := f.FetchAll(context.Background(), "tjpe")

	if len(fake.calls) != 2 {
		t.Errorf("issued %d requests, want 2", len(fake.calls))
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestFetchAllStopsOnShortPage(t *testing.T) {
	fake := &fakeSearcher{pages: map[string][][]domain.Hit{
		"tjpe": {fullPage("p0", 1), fullPage("p1", 2)},
	}}

	f := NewFetcher(fake, testConfig())
	records := f.FetchAll(context.Background(), "tjpe")

	if len(fake.calls) != 1 {
		t.Errorf("issued %d requests, want 1 (short page ends pagination)", len(fake.calls))
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestFetchAllKeepsAccumulatedOnTransportError(t *testing.T) {
	fake := &fakeSearcher{
		pages: map[string][][]domain.Hit{
			"tjpe": {fullPage("p0", 2), fullPage("p1", 2)},
		},
		fail: map[string]map[int]*datajud.TransportError{
			"tjpe": {1: {Tribunal: "tjpe", Page: 1}},
		},
	}

	f := NewFetcher(fake, testConfig())
	records := f.FetchAll(context.Background(), "tjpe")

	if len(records) != 2 {
		t.Errorf("got %d records, want the 2 accumulated before the failure", len(records))
	}
	if len(fake.calls) != 2 {
		t.Errorf("issued %d requests, want 2", len(fake.calls))
	}
}

func TestFetchAllDateFilter(t *testing.T) {
	cutoff := time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC)

	fake := &fakeSearcher{pages: map[string][][]domain.Hit{
		"tjpe": {{
			hitDated("before", "2021-01-14T10:00:00Z"),
			hitDated("exact", "2021-01-15T00:00:00Z"),
			hitDated("after", "2021-01-16"),
			hitDated("unparsable", "???"),
			hitDated("missing", ""),
		}},
	}}

	cfg := testConfig()
	cfg.PageSize = 100
	cfg.Since = cutoff

	records := NewFetcher(fake, cfg).FetchAll(context.Background(), "tjpe")

	got := make(map[string]bool, len(records))
	for _, r := range records {
		got[r.CaseID] = true
	}

	if got["before"] {
		t.Error("hit dated strictly before the cutoff should be dropped")
	}
	for _, id := range []string{"exact", "after", "unparsable", "missing"} {
		if !got[id] {
			t.Errorf("hit %q should be retained", id)
		}
	}
}

func TestFetchAllRecordAssembly(t *testing.T) {
	src := domain.Source{
		NumeroProcesso:      "0000001-11.2020.8.17.0001",
		Grau:                "1",
		ClasseProcessual:    "Procedimento Comum",
		AssuntosProcessuais: []string{"Contrato", "Cobrança"},
		OrgaoJulgador:       domain.OrgaoJulgador{NomeOrgao: "Vara Única"},
		SituacaoProcessual:  "Em andamento",
		Partes: []domain.Parte{
			{TipoParte: "AUTOR", Nome: "Empresa A"},
			{TipoParte: "RÉU", Nome: "Empresa B"},
		},
		DataDistribuicao: "2020-01-01T00:00:00Z",
		Movimentos: []domain.MovementEntry{
			{DataHora: "t1", Descricao: "Intimação para manifestação"},
			{DataHora: "t2", Descricao: "Sentença de mérito"},
		},
	}
	fake := &fakeSearcher{pages: map[string][][]domain.Hit{
		"tjpe": {{{Source: src}}},
	}}

	records := NewFetcher(fake, testConfig()).FetchAll(context.Background(), "tjpe")
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if r.Tribunal != "TJPE" {
		t.Errorf("Tribunal = %q, want upper-cased TJPE", r.Tribunal)
	}
	if r.Subjects != "Contrato, Cobrança" {
		t.Errorf("Subjects = %q", r.Subjects)
	}
	if r.Parties != "AUTOR: Empresa A; RÉU: Empresa B" {
		t.Errorf("Parties = %q", r.Parties)
	}
	if r.MovementCount != 2 {
		t.Errorf("MovementCount = %d, want 2", r.MovementCount)
	}
	if r.RelevantDeadlines != "t1: Intimação para manifestação" {
		t.Errorf("RelevantDeadlines = %q", r.RelevantDeadlines)
	}
	if r.LastDecisionSummary != "Sentença de mérito" {
		t.Errorf("LastDecisionSummary = %q", r.LastDecisionSummary)
	}
	if r.InExecutionPhase {
		t.Error("InExecutionPhase = true, want false")
	}
}
