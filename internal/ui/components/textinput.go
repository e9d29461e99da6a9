package components

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilan/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with application styling. Interview
// answers can be long, so the component shows a character count instead
// of validating.
type TextInput struct {
	Model     textinput.Model
	ShowCount bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.ShowCount {
		n := len(t.Model.Value())
		view += "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d caracteres", n))
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the input for the next question.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
}
