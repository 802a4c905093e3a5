package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/vinciapp/vinci/internal/ui/theme"
)

// AnswerField is the practice answer box. It accepts only the characters an
// arithmetic answer can contain (digits, one slash for fractions, a leading
// minus) and, once graded, locks and renders the verdict inline.
type AnswerField struct {
	input  textinput.Model
	graded bool
	right  bool
	want   string
}

// NewAnswerField creates a focused, empty answer field.
func NewAnswerField() AnswerField {
	ti := textinput.New()
	ti.Placeholder = "type your answer"
	ti.CharLimit = 20
	ti.Focus()
	return AnswerField{input: ti}
}

func (a AnswerField) Init() tea.Cmd {
	return a.input.Focus()
}

// Update forwards keystrokes to the input, dropping printable keys outside
// the answer alphabet. A graded field ignores input entirely.
func (a AnswerField) Update(msg tea.Msg) (AnswerField, tea.Cmd) {
	if a.graded {
		return a, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if !allowedAnswerKey(kmsg.String(), a.input.Value()) {
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// allowedAnswerKey filters single printable characters; control keys
// (backspace, arrows) pass through untouched.
func allowedAnswerKey(key, current string) bool {
	if len(key) != 1 {
		return true
	}
	ch := key[0]
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch == '/':
		// one fraction bar at most
		return !strings.Contains(current, "/")
	case ch == '-':
		return current == ""
	default:
		return false
	}
}

// Value returns the typed answer, trimmed.
func (a AnswerField) Value() string {
	return strings.TrimSpace(a.input.Value())
}

// Grade locks the field and records the verdict for rendering. want is the
// expected answer, shown when the verdict is wrong.
func (a *AnswerField) Grade(right bool, want string) {
	a.graded = true
	a.right = right
	a.want = want
}

func (a AnswerField) View() string {
	view := a.input.View()
	if !a.graded {
		return view
	}
	if a.right {
		return view + "  " + theme.Right.Render("✓ Correct!")
	}
	return view + "  " + theme.Wrong.Render("✗ Not quite.") + " " +
		theme.Body.Render("The answer is "+a.want+".")
}
