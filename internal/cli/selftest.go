package cli

import "github.com/locarlabs/datajud/internal/core/domain"

// selftestRecords returns fixed synthetic records so the export path can be
// validated offline, without touching the API.
func selftestRecords() []domain.CaseRecord {
	return []domain.CaseRecord{
		{
			CaseID:              "0000000-00.2020.8.99.9999",
			Tribunal:            "TJXX",
			Degree:              "1",
			ClassLabel:          "Procedimento Comum",
			Subjects:            "Contrato",
			DecidingBody:        "Vara Única",
			Status:              "Em andamento",
			Parties:             "AUTOR: Empresa A; RÉU: Empresa B",
			DistributionDate:    "2020-01-01",
			MovementCount:       10,
			RelevantDeadlines:   "2020-02-01T00:00:00Z: Intimação para manifestação",
			LastDecisionSummary: "Decisão interlocutória proferida.",
			InExecutionPhase:    false,
		},
		{
			CaseID:              "1111111-11.2021.8.99.9999",
			Tribunal:            "TJYY",
			Degree:              "2",
			ClassLabel:          "Execução",
			Subjects:            "Cobrança",
			DecidingBody:        "Turma Recursal",
			Status:              "Sentenciado",
			Parties:             "EXEQUENTE: Fulano; EXECUTADO: Sicrano",
			DistributionDate:    "2021-05-10",
			MovementCount:       8,
			RelevantDeadlines:   "",
			LastDecisionSummary: "Sentença de mérito.",
			InExecutionPhase:    true,
		},
	}
}
