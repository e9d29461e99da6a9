package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilan/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with an optional
// phase label on the left.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	emptyStr := theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// PhaseDots renders the three-phase indicator: a filled dot per
// completed phase, a highlighted dot for the current one.
func PhaseDots(labels []string, current int) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		dot := "○"
		switch {
		case i < current:
			style = lipgloss.NewStyle().Foreground(theme.Success)
			dot = "●"
		case i == current:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			dot = "●"
		}
		parts = append(parts, style.Render(dot+" "+label))
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("  ──  "))
}
