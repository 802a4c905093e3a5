package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/vinciapp/vinci/internal/ui/theme"
)

// ChecklistItem is one toggleable entry in a Checklist.
type ChecklistItem struct {
	ID    string
	Label string
}

// Checklist is a multi-select list: up/down move the cursor (wrapping at
// the ends), space toggles the entry under it.
type Checklist struct {
	Items   []ChecklistItem
	cursor  int
	checked map[string]bool
}

func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items, checked: make(map[string]bool)}
}

func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Items) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		c.cursor--
		if c.cursor < 0 {
			c.cursor = len(c.Items) - 1
		}
	case "down", "j":
		c.cursor++
		if c.cursor >= len(c.Items) {
			c.cursor = 0
		}
	case "space", " ":
		id := c.Items[c.cursor].ID
		c.checked[id] = !c.checked[id]
	}

	return c, nil
}

func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		mark := "[ ]"
		if c.checked[item.ID] {
			mark = "[x]"
		}
		line := mark + " " + item.Label
		if i == c.cursor {
			s += theme.Focused.Render("  ▸ "+line) + "\n"
		} else {
			s += theme.Blurred.Render("    "+line) + "\n"
		}
	}
	return s
}

// Checked returns the toggled-on IDs in item order.
func (c Checklist) Checked() []string {
	var ids []string
	for _, item := range c.Items {
		if c.checked[item.ID] {
			ids = append(ids, item.ID)
		}
	}
	return ids
}
