package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vinciapp/vinci/internal/ui/theme"
)

// Button is a one-action chip. Enter or space fires it while focused.
type Button struct {
	Label   string
	Focused bool
	Do      func() tea.Cmd
}

// NewButton creates a focused button.
func NewButton(label string, do func() tea.Cmd) Button {
	return Button{Label: label, Focused: true, Do: do}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused || b.Do == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "space", " ":
			return b, b.Do()
		}
	}
	return b, nil
}

func (b Button) View() string {
	label := "[ " + b.Label + " ]"
	if b.Focused {
		return lipgloss.NewStyle().
			Background(theme.Brass).
			Foreground(theme.Board).
			Bold(true).
			Render(label)
	}
	return lipgloss.NewStyle().Foreground(theme.Frame).Render(label)
}
