// Package export writes the final record set to its destination formats.
//
// Every sink is independent: a failing sink logs a warning and, when a
// fallback is configured, hands the records to it. No sink failure aborts
// the pipeline.
package export

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/locarlabs/datajud/internal/core/domain"
)

// ErrUnavailable marks a sink whose backing format support is missing at
// runtime. The plan runner treats it like any other sink failure and falls
// back, but callers can single it out with errors.Is.
var ErrUnavailable = errors.New("sink unavailable")

// Sink writes the record set to one destination format.
type Sink interface {
	Name() string
	Write(ctx context.Context, records []domain.CaseRecord) error
}

// Attempt pairs a sink with an optional fallback tried when it fails.
type Attempt struct {
	Sink     Sink
	Fallback *Attempt
}

// Run executes every attempt independently, following fallback chains on
// failure. It never returns an error: export problems are warnings.
func Run(ctx context.Context, attempts []Attempt, records []domain.CaseRecord) {
	for _, attempt := range attempts {
		for a := &attempt; a != nil; a = a.Fallback {
			err := a.Sink.Write(ctx, records)
			if err == nil {
				slog.Info("Export written", "sink", a.Sink.Name())
				break
			}
			if a.Fallback != nil {
				slog.Warn("Export failed, falling back",
					"sink", a.Sink.Name(), "fallback", a.Fallback.Sink.Name(), "error", err)
			} else {
				slog.Warn("Export failed", "sink", a.Sink.Name(), "error", err)
			}
		}
	}
}

// columns is the column order of every tabular sink, matching the upstream
// field names.
var columns = []string{
	"cnj",
	"tribunal",
	"grau",
	"classe",
	"assunto",
	"orgao",
	"status",
	"partes",
	"dt_distribuicao",
	"qtd_movimentos",
	"prazos_relevantes",
	"resumo_decisao",
	"fase_execucao",
}

func rowValues(r domain.CaseRecord) []string {
	execucao := "Não"
	if r.InExecutionPhase {
		execucao = "Sim"
	}
	return []string{
		r.CaseID,
		r.Tribunal,
		r.Degree,
		r.ClassLabel,
		r.Subjects,
		r.DecidingBody,
		r.Status,
		r.Parties,
		r.DistributionDate,
		strconv.Itoa(r.MovementCount),
		r.RelevantDeadlines,
		r.LastDecisionSummary,
		execucao,
	}
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
