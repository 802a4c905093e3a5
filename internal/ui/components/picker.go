package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/vinciapp/vinci/internal/ui/theme"
)

// PickItem is one choice in a Picker.
type PickItem struct {
	Label string
	Pick  func() tea.Cmd
}

// Picker is a single-choice vertical list. The cursor wraps at both ends
// and enter fires the item under it.
type Picker struct {
	Items  []PickItem
	Cursor int
}

func NewPicker(items []PickItem) Picker {
	return Picker{Items: items}
}

func (p Picker) Init() tea.Cmd {
	return nil
}

func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.Items) == 0 {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		p.Cursor--
		if p.Cursor < 0 {
			p.Cursor = len(p.Items) - 1
		}
	case "down", "j":
		p.Cursor++
		if p.Cursor >= len(p.Items) {
			p.Cursor = 0
		}
	case "enter":
		item := p.Items[p.Cursor]
		if item.Pick != nil {
			return p, item.Pick()
		}
	}

	return p, nil
}

func (p Picker) View() string {
	var s string
	for i, item := range p.Items {
		if i == p.Cursor {
			s += theme.Focused.Render("  ▸ "+item.Label) + "\n"
		} else {
			s += theme.Blurred.Render("    "+item.Label) + "\n"
		}
	}
	return s
}
