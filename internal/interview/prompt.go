package interview

import (
	"fmt"
	"strings"

	"github.com/abhisek/bilan/internal/pack"
)

const systemPrompt = `You are an experienced career coach conducting a "bilan de competences" (skills assessment) interview with a French-speaking adult.

Rules:
- Ask exactly one question at a time, in French, using "vous".
- The question must be open-ended and invite a substantive answer. Never ask yes/no questions.
- Build on what the person has already said; never ignore their recent answers.
- Match the requested phase:
  - "preliminaire": establish rapport, explore the career path and current situation.
  - "investigation": dig into skills, motivations, values and work preferences. This is the core of the assessment.
  - "conclusion": help the person project forward, validate a professional direction and identify next steps.
- Respect the coaching style when given (for example "direct" means concise and to the point, "bienveillant" means warm and encouraging).
- Do not repeat any question from the "already asked" list, including rephrasings of the same question.
- Keep the question under three sentences.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Phase: %s\n", input.Phase)
	if input.UserName != "" {
		fmt.Fprintf(&b, "Name: %s\n", input.UserName)
	}
	if input.CoachingStyle != "" {
		fmt.Fprintf(&b, "Coaching style: %s\n", input.CoachingStyle)
	}
	if input.PackageName != "" {
		fmt.Fprintf(&b, "Package: %s\n", input.PackageName)
	}

	if p := input.Profile; p != nil && !p.IsEmpty() {
		b.WriteString("\nProfile:\n")
		if p.Profession != "" {
			fmt.Fprintf(&b, "Profession: %s\n", p.Profession)
		}
		if p.YearsExperience > 0 {
			fmt.Fprintf(&b, "Experience: %d ans\n", p.YearsExperience)
		}
		if p.Education != "" {
			fmt.Fprintf(&b, "Education: %s\n", p.Education)
		}
		if len(p.Skills) > 0 {
			fmt.Fprintf(&b, "Declared skills: %s\n", strings.Join(p.Skills, ", "))
		}
		if p.Background != "" {
			fmt.Fprintf(&b, "Background:\n%s\n", p.Background)
		}
	}

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildList(input.PriorQuestions, cfg.MaxPriorQuestions))

	b.WriteString("\n\nMost recent answers:\n")
	b.WriteString(buildList(input.RecentAnswers, cfg.MaxRecentAnswers))

	return b.String()
}

// buildList formats items for the prompt, keeping only the most recent
// max entries. Returns "None" for an empty list.
func buildList(items []string, max int) string {
	if len(items) == 0 {
		return "None"
	}

	if max > 0 && len(items) > max {
		items = items[len(items)-max:]
	}

	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it)
	}
	return strings.TrimRight(b.String(), "\n")
}

// PhaseOpening is the canned transition line shown when a phase starts.
func PhaseOpening(p pack.Phase) string {
	switch p {
	case pack.PhaseInvestigation:
		return "Entrons maintenant dans le coeur du bilan."
	case pack.PhaseConclusion:
		return "Abordons la derniere etape : votre projet."
	default:
		return "Commencons par faire connaissance."
	}
}
