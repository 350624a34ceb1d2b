package domain

import "strings"

// SearchResponse is the upstream DataJud search reply. Only the fields the
// pipeline reads are mapped.
type SearchResponse struct {
	Hits struct {
		Hits []Hit `json:"hits"`
	} `json:"hits"`
}

// Hit is one search result wrapper.
type Hit struct {
	Source Source `json:"_source"`
}

// Source carries the case document inside a hit.
type Source struct {
	NumeroProcesso      string          `json:"numeroProcesso"`
	Grau                string          `json:"grau"`
	ClasseProcessual    string          `json:"classeProcessual"`
	AssuntosProcessuais []string        `json:"assuntosProcessuais"`
	OrgaoJulgador       OrgaoJulgador   `json:"orgaoJulgador"`
	SituacaoProcessual  string          `json:"situacaoProcessual"`
	Partes              []Parte         `json:"partes"`
	DataDistribuicao    string          `json:"dataDistribuicao"`
	Movimentos          []MovementEntry `json:"movimentos"`
}

// OrgaoJulgador names the deciding body of a case.
type OrgaoJulgador struct {
	NomeOrgao string `json:"nomeOrgao"`
}

// Parte is one party entry of a case.
type Parte struct {
	TipoParte string `json:"tipoParte"`
	Nome      string `json:"nome"`
}

// MovementEntry is one timestamped entry of a case's movement log.
// Upstream order is the authoritative chronology, earliest first; the
// timestamp is carried as an opaque string and never re-parsed for ordering.
type MovementEntry struct {
	DataHora  string `json:"dataHora"`
	Descricao string `json:"descricao"`
}

// JoinedSubjects flattens the subject list for tabular output.
func (s Source) JoinedSubjects() string {
	return strings.Join(s.AssuntosProcessuais, ", ")
}

// JoinedParties flattens the party list into "role: name" pairs.
func (s Source) JoinedParties() string {
	parts := make([]string, 0, len(s.Partes))
	for _, p := range s.Partes {
		parts = append(parts, p.TipoParte+": "+p.Nome)
	}
	return strings.Join(parts, "; ")
}
