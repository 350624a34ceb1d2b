package domain

// CaseRecord is one consolidated row per (case number, tribunal).
// Records are assembled once from an upstream hit and never mutated;
// the aggregator only drops duplicates, it never rewrites survivors.
type CaseRecord struct {
	CaseID              string `db:"cnj"               json:"cnj"`
	Tribunal            string `db:"tribunal"          json:"tribunal"`
	Degree              string `db:"grau"              json:"grau"`
	ClassLabel          string `db:"classe"            json:"classe"`
	Subjects            string `db:"assunto"           json:"assunto"`
	DecidingBody        string `db:"orgao"             json:"orgao"`
	Status              string `db:"status"            json:"status"`
	Parties             string `db:"partes"            json:"partes"`
	DistributionDate    string `db:"dt_distribuicao"   json:"dt_distribuicao"`
	MovementCount       int    `db:"qtd_movimentos"    json:"qtd_movimentos"`
	RelevantDeadlines   string `db:"prazos_relevantes" json:"prazos_relevantes"`
	LastDecisionSummary string `db:"resumo_decisao"    json:"resumo_decisao"`
	InExecutionPhase    bool   `db:"fase_execucao"     json:"fase_execucao"`
}

// Key identifies a record for cross-tribunal deduplication.
func (r CaseRecord) Key() string {
	return r.CaseID + "|" + r.Tribunal
}
