package synthesis

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/bilan/internal/session"
)

// Fallback builds a deterministic summary from the transcript alone.
// Used when no LLM provider is configured or generation fails; the
// assessment still completes with something honest to show.
func Fallback(input Input) *session.Summary {
	var b strings.Builder

	name := input.UserName
	if name == "" {
		name = "vous"
	}

	fmt.Fprintf(&b, "Synthese de votre bilan de competences, %s.\n\n", name)
	fmt.Fprintf(&b, "Vous avez repondu a %d questions au cours de cet entretien.\n", len(input.Exchanges))

	themes := themeCounts(input.Exchanges)
	if len(themes) > 0 {
		b.WriteString("Les themes les plus explores ont ete : ")
		b.WriteString(strings.Join(themes, ", "))
		b.WriteString(".\n")
	}

	b.WriteString("\nVos reponses ont ete conservees ; reprenez-les a tete reposee pour en degager vos propres conclusions.")

	sum := &session.Summary{
		Text:      b.String(),
		WrittenAt: time.Now().UTC(),
	}

	if p := input.Profile; p != nil && len(p.Skills) > 0 {
		for _, s := range p.Skills {
			sum.Strengths = append(sum.Strengths, "Competence declaree : "+s)
		}
	}

	return sum
}

// themeCounts returns themes seen in the transcript, most frequent
// first, capped at three.
func themeCounts(exchanges []Exchange) []string {
	counts := make(map[string]int)
	var order []string
	for _, ex := range exchanges {
		if ex.Theme == "" {
			continue
		}
		if counts[ex.Theme] == 0 {
			order = append(order, ex.Theme)
		}
		counts[ex.Theme]++
	}

	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if counts[order[j]] > counts[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	if len(order) > 3 {
		order = order[:3]
	}
	return order
}
