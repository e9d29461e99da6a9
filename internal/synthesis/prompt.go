package synthesis

import (
	"fmt"
	"strings"
)

const summarySystemPrompt = `You are an experienced career coach writing the final synthesis of a "bilan de competences" (skills assessment). You have the full interview transcript. Write in French, address the person with "vous", and ground every claim in what they actually said. Be specific and actionable; avoid generic praise.`

func buildSummaryUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	if input.UserName != "" {
		fmt.Fprintf(&b, "Name: %s\n", input.UserName)
	}
	if input.PackageName != "" {
		fmt.Fprintf(&b, "Package: %s\n", input.PackageName)
	}
	if input.CoachingStyle != "" {
		fmt.Fprintf(&b, "Coaching style: %s\n", input.CoachingStyle)
	}

	if p := input.Profile; p != nil && !p.IsEmpty() {
		b.WriteString("\nDeclared profile:\n")
		if p.Profession != "" {
			fmt.Fprintf(&b, "Profession: %s\n", p.Profession)
		}
		if p.YearsExperience > 0 {
			fmt.Fprintf(&b, "Experience: %d ans\n", p.YearsExperience)
		}
		if len(p.Skills) > 0 {
			fmt.Fprintf(&b, "Skills: %s\n", strings.Join(p.Skills, ", "))
		}
	}

	exchanges := input.Exchanges
	if cfg.MaxExchanges > 0 && len(exchanges) > cfg.MaxExchanges {
		exchanges = exchanges[len(exchanges)-cfg.MaxExchanges:]
	}

	b.WriteString("\nInterview transcript:\n")
	if len(exchanges) == 0 {
		b.WriteString("None\n")
	}
	for i, ex := range exchanges {
		fmt.Fprintf(&b, "%d. [%s] Q: %s\n   R: %s\n", i+1, ex.Phase, ex.Question, ex.Answer)
	}

	return b.String()
}
