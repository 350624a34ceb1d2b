// Package classify derives structured signals from a case's movement log.
//
// Classification is pure string scanning: each movement description is
// lower-cased and checked for substring containment against three keyword
// lists. A single movement may satisfy more than one list.
package classify

import (
	"strings"

	"github.com/locarlabs/datajud/internal/core/domain"
)

// Vocabulary holds the lower-case substring lists driving movement
// classification. Matching is by containment, not whole words, so "prazo"
// also hits "prazos". Lists are injected through configuration; empty lists
// are backfilled with the defaults.
type Vocabulary struct {
	Deadline  []string `yaml:"deadline"`
	Decision  []string `yaml:"decision"`
	Execution []string `yaml:"execution"`
}

// DefaultVocabulary returns the stock Portuguese keyword lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Deadline: []string{
			"prazo",
			"intimação",
			"manifestação",
			"apresentar defesa",
			"apresentar",
			"contestação",
			"contrarrações",
			"embargos",
			"notificação",
			"resposta",
			"recurso",
			"juntada de petição",
		},
		Decision: []string{
			"sentença",
			"acórdão",
			"decisão",
			"despacho",
			"homologação",
			"julgado",
			"julgamento",
			"proferida",
			"deferida",
			"indeferida",
		},
		Execution: []string{
			"execução",
			"cumprimento",
			"penhora",
			"bloqueio",
			"exequente",
			"exequido",
			"expedição de alvará",
			"leilão",
			"arrematação",
		},
	}
}

// Result carries the three signals derived from one movement log.
type Result struct {
	// Deadlines holds "timestamp: description" entries for every matching
	// movement, in the original log order, repeats included.
	Deadlines []string

	// LastDecision is the description of the chronologically last movement
	// matching the decision list, or empty when none matches.
	LastDecision string

	// InExecution is true when any movement matches the execution list.
	InExecution bool
}

// Classify scans a movement log and derives the deadline entries, the most
// recent decision summary, and the execution-phase flag. It is pure: the
// same log always yields the same result. A nil log behaves as an empty one.
func (v Vocabulary) Classify(movements []domain.MovementEntry) Result {
	var res Result
	for _, m := range movements {
		desc := strings.ToLower(m.Descricao)
		if containsAny(desc, v.Deadline) {
			res.Deadlines = append(res.Deadlines, m.DataHora+": "+m.Descricao)
		}
		if !res.InExecution && containsAny(desc, v.Execution) {
			res.InExecution = true
		}
	}

	// Reverse scan so the most recent decision wins.
	for i := len(movements) - 1; i >= 0; i-- {
		if containsAny(strings.ToLower(movements[i].Descricao), v.Decision) {
			res.LastDecision = movements[i].Descricao
			break
		}
	}

	return res
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
