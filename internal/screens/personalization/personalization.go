package personalization

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilan/internal/pack"
	"github.com/abhisek/bilan/internal/profile"
	"github.com/abhisek/bilan/internal/progression"
	"github.com/abhisek/bilan/internal/screen"
	"github.com/abhisek/bilan/internal/screens/nav"
	"github.com/abhisek/bilan/internal/session"
	"github.com/abhisek/bilan/internal/ui/components"
	"github.com/abhisek/bilan/internal/ui/layout"
	"github.com/abhisek/bilan/internal/ui/theme"
)

type step int

const (
	stepStyle step = iota
	stepProfileAsk
	stepProfession
	stepYears
	stepEducation
	stepSkills
	stepBackground
	stepDone
)

// Styles the coach can adopt during the interview.
var coachingStyles = []string{"bienveillant", "direct", "exigeant"}

// PersonalScreen collects the coaching style and the optional
// prior-experience profile. A filled profile shortens the interview;
// skipping it keeps the package's full-length targets.
type PersonalScreen struct {
	ctrl      *session.Controller
	step      step
	styleMenu components.Menu
	input     components.TextInput
	prof      profile.Profile
	targets   progression.Targets
}

var _ screen.Screen = (*PersonalScreen)(nil)
var _ screen.KeyHintProvider = (*PersonalScreen)(nil)

// New creates the personalization screen.
func New(ctrl *session.Controller) *PersonalScreen {
	s := &PersonalScreen{ctrl: ctrl}

	items := make([]components.MenuItem, len(coachingStyles))
	for i, style := range coachingStyles {
		items[i] = components.MenuItem{
			Label: style,
			Action: func() tea.Cmd {
				s.ctrl.SetCoachingStyle(style)
				s.step = stepProfileAsk
				return nil
			},
		}
	}
	s.styleMenu = components.NewMenu(items)
	return s
}

func (s *PersonalScreen) Init() tea.Cmd {
	return nil
}

func (s *PersonalScreen) Title() string {
	return "Personnalisation"
}

func (s *PersonalScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepStyle:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Naviguer"},
			{Key: "Entree", Description: "Choisir"},
		}
	case stepProfileAsk:
		return []layout.KeyHint{
			{Key: "O", Description: "Renseigner mon parcours"},
			{Key: "N", Description: "Passer"},
		}
	case stepDone:
		return []layout.KeyHint{
			{Key: "Entree", Description: "Commencer l'entretien"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Entree", Description: "Valider"},
			{Key: "Esc", Description: "Passer le reste"},
		}
	}
}

func (s *PersonalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.step >= stepProfession && s.step <= stepBackground {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch s.step {
	case stepStyle:
		return s.updateStyle(kmsg)
	case stepProfileAsk:
		return s.updateProfileAsk(kmsg)
	case stepDone:
		if kmsg.String() == "enter" {
			s.ctrl.Transition(session.StateQuestionnaire)
			return s, tea.Batch(nav.Goto(session.StateQuestionnaire), nav.SaveNow())
		}
		return s, nil
	default:
		return s.updateField(kmsg)
	}
}

func (s *PersonalScreen) updateStyle(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.styleMenu, cmd = s.styleMenu.Update(msg)
	return s, cmd
}

func (s *PersonalScreen) updateProfileAsk(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "o", "enter":
		s.step = stepProfession
		s.input = components.NewTextInput(s.placeholder(), s.charLimit())
		return s, s.input.Init()
	case "n", "esc":
		s.ctrl.SetProfile(nil)
		s.finish()
		return s, nav.SaveNow()
	}
	return s, nil
}

func (s *PersonalScreen) updateField(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s.storeField(strings.TrimSpace(s.input.Value()))
		s.step++
		if s.step == stepDone {
			s.applyProfile()
			return s, nav.SaveNow()
		}
		s.input = components.NewTextInput(s.placeholder(), s.charLimit())
		s.input.ShowCount = s.step == stepBackground
		return s, s.input.Init()

	case "esc":
		// Keep what was entered so far and move on.
		s.storeField(strings.TrimSpace(s.input.Value()))
		s.applyProfile()
		return s, nav.SaveNow()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PersonalScreen) storeField(value string) {
	switch s.step {
	case stepProfession:
		s.prof.Profession = value
	case stepYears:
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			s.prof.YearsExperience = n
		}
	case stepEducation:
		s.prof.Education = value
	case stepSkills:
		for _, sk := range strings.Split(value, ",") {
			if sk = strings.TrimSpace(sk); sk != "" {
				s.prof.Skills = append(s.prof.Skills, sk)
			}
		}
	case stepBackground:
		s.prof.Background = value
	}
}

// applyProfile installs the profile and computes the adjusted targets
// shown on the final step.
func (s *PersonalScreen) applyProfile() {
	if s.prof.IsEmpty() {
		s.ctrl.SetProfile(nil)
	} else {
		p := s.prof
		s.ctrl.SetProfile(&p)
	}
	s.finish()
}

func (s *PersonalScreen) finish() {
	s.step = stepDone
	if pkg, err := pack.Get(s.ctrl.Record().PackageID); err == nil && pkg.HasEstimates() {
		red := profile.EstimateReduction(s.ctrl.Record().Profile)
		s.targets = progression.AdjustedTargets(pkg, red)
	}
}

func (s *PersonalScreen) placeholder() string {
	switch s.step {
	case stepProfession:
		return "Votre profession actuelle..."
	case stepYears:
		return "Annees d'experience..."
	case stepEducation:
		return "Formation / diplomes..."
	case stepSkills:
		return "Competences cles, separees par des virgules..."
	default:
		return "Decrivez librement votre parcours..."
	}
}

func (s *PersonalScreen) charLimit() int {
	if s.step == stepBackground {
		return 2500
	}
	return 120
}

func (s *PersonalScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render(s.heading()))
	b.WriteString("\n\n")

	switch s.step {
	case stepStyle:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.styleMenu.View()))

	case stepProfileAsk:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("Un profil renseigne permet d'ajuster la duree de l'entretien\na ce que vous avez deja formalise."))

	case stepDone:
		total := s.targets.Total
		msg := "Votre entretien est pret."
		if total > 0 {
			msg = fmt.Sprintf("Votre entretien comportera environ %d questions\n(%d / %d / %d par phase).",
				total, s.targets.Phases[0], s.targets.Phases[1], s.targets.Phases[2])
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(msg))

	default:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	}

	return b.String()
}

func (s *PersonalScreen) heading() string {
	switch s.step {
	case stepStyle:
		return "Quel style d'accompagnement preferez-vous ?"
	case stepProfileAsk:
		return "Souhaitez-vous renseigner votre parcours ? (optionnel)"
	case stepProfession:
		return "Votre profession"
	case stepYears:
		return "Votre experience"
	case stepEducation:
		return "Votre formation"
	case stepSkills:
		return "Vos competences cles"
	case stepBackground:
		return "Votre parcours en quelques lignes"
	default:
		return "C'est note"
	}
}
