package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeInto(f AnswerField, text string) AnswerField {
	for _, r := range text {
		f, _ = f.Update(keyPress(r))
	}
	return f
}

func TestAnswerFieldAlphabet(t *testing.T) {
	f := NewAnswerField()
	f = typeInto(f, "1a2b/3")
	if got := f.Value(); got != "12/3" {
		t.Errorf("value = %q, want %q", got, "12/3")
	}

	// a second fraction bar is dropped
	f = typeInto(f, "/4")
	if got := f.Value(); got != "12/34" {
		t.Errorf("value = %q, want %q", got, "12/34")
	}
}

func TestAnswerFieldMinusOnlyLeading(t *testing.T) {
	f := typeInto(NewAnswerField(), "-5")
	if got := f.Value(); got != "-5" {
		t.Errorf("value = %q, want %q", got, "-5")
	}

	f = typeInto(NewAnswerField(), "5-")
	if got := f.Value(); got != "5" {
		t.Errorf("value = %q, want %q", got, "5")
	}
}

func TestAnswerFieldLocksAfterGrading(t *testing.T) {
	f := typeInto(NewAnswerField(), "8")
	f.Grade(false, "9")

	f = typeInto(f, "7")
	if got := f.Value(); got != "8" {
		t.Errorf("graded field accepted input: value = %q", got)
	}
	if view := f.View(); !strings.Contains(view, "The answer is 9.") {
		t.Errorf("view missing expected answer: %q", view)
	}
}

func TestNumberFieldFallsBackToDefault(t *testing.T) {
	f := NewNumberField(10, 3)
	if got := f.Value(); got != 10 {
		t.Errorf("empty field value = %d, want 10", got)
	}

	f, _ = f.Update(keyPress('x'))
	if got := f.Value(); got != 10 {
		t.Errorf("value after letter = %d, want 10", got)
	}

	f, _ = f.Update(keyPress('2'))
	f, _ = f.Update(keyPress('5'))
	if got := f.Value(); got != 25 {
		t.Errorf("value = %d, want 25", got)
	}
}

func TestChecklistToggleOrder(t *testing.T) {
	c := NewChecklist([]ChecklistItem{
		{ID: "addition", Label: "Addition"},
		{ID: "division", Label: "Division"},
		{ID: "fractions", Label: "Fractions"},
	})

	c, _ = c.Update(keyPress(' ')) // toggle addition
	c, _ = c.Update(specialKey(tea.KeyDown))
	c, _ = c.Update(specialKey(tea.KeyDown))
	c, _ = c.Update(keyPress(' ')) // toggle fractions

	got := c.Checked()
	if len(got) != 2 || got[0] != "addition" || got[1] != "fractions" {
		t.Errorf("checked = %v, want [addition fractions]", got)
	}

	c, _ = c.Update(specialKey(tea.KeyDown)) // wraps to addition
	c, _ = c.Update(keyPress(' '))           // untoggle addition
	got = c.Checked()
	if len(got) != 1 || got[0] != "fractions" {
		t.Errorf("checked = %v, want [fractions]", got)
	}
}

func TestPickerWrapsAndPicks(t *testing.T) {
	picked := ""
	items := []PickItem{
		{Label: "first", Pick: func() tea.Cmd { picked = "first"; return nil }},
		{Label: "last", Pick: func() tea.Cmd { picked = "last"; return nil }},
	}

	p := NewPicker(items)
	p, _ = p.Update(specialKey(tea.KeyUp)) // wraps to the end
	if p.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", p.Cursor)
	}
	p.Update(specialKey(tea.KeyEnter))
	if picked != "last" {
		t.Errorf("picked = %q, want %q", picked, "last")
	}
}

func TestPageMeterLabel(t *testing.T) {
	m := PageMeter{Total: 4, Current: 1, Right: []bool{true}}
	if view := m.View(); !strings.Contains(view, "Problem 2 of 4") {
		t.Errorf("view missing label: %q", view)
	}
}

func TestAccuracyBarPercent(t *testing.T) {
	b := AccuracyBar{Label: "Accuracy", Accuracy: 0.75, Width: 20}
	if view := b.View(); !strings.Contains(view, "75%") {
		t.Errorf("view missing percent: %q", view)
	}
}
