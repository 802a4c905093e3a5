package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberField is a digits-only input for small settings values like minutes
// or page counts. An empty or unparsable field falls back to its default.
type NumberField struct {
	input textinput.Model
	def   int
}

// NewNumberField creates a focused field whose placeholder shows the
// default. maxDigits caps the input length.
func NewNumberField(def, maxDigits int) NumberField {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(def)
	ti.CharLimit = maxDigits
	ti.Focus()
	return NumberField{input: ti, def: def}
}

func (f NumberField) Init() tea.Cmd {
	return f.input.Focus()
}

func (f NumberField) Update(msg tea.Msg) (NumberField, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f NumberField) View() string {
	return f.input.View()
}

// Value returns the typed number, or the default when nothing usable was
// typed.
func (f NumberField) Value() int {
	n, err := strconv.Atoi(f.input.Value())
	if err != nil {
		return f.def
	}
	return n
}
