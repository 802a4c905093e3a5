package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vinciapp/vinci/internal/ui/theme"
)

// PageMeter shows where the student is on a page: one notch per problem,
// colored by how the answered ones went.
type PageMeter struct {
	Total   int
	Current int    // zero-based index of the problem being worked
	Right   []bool // verdicts for problems before Current
}

func (m PageMeter) View() string {
	label := theme.Body.Render(fmt.Sprintf("Problem %d of %d", m.Current+1, m.Total))

	notches := make([]string, 0, m.Total)
	for i := 0; i < m.Total; i++ {
		switch {
		case i < len(m.Right) && m.Right[i]:
			notches = append(notches, theme.Right.Render("●"))
		case i < len(m.Right):
			notches = append(notches, theme.Wrong.Render("●"))
		case i == m.Current:
			notches = append(notches, lipgloss.NewStyle().Foreground(theme.Brass).Render("◉"))
		default:
			notches = append(notches, lipgloss.NewStyle().Foreground(theme.Frame).Render("○"))
		}
	}

	return label + "  " + strings.Join(notches, " ")
}

// AccuracyBar renders an accuracy between 0 and 1 as a bar whose fill color
// follows the result: leaf from 80%, brass from 50%, clay below.
type AccuracyBar struct {
	Label    string
	Accuracy float64
	Width    int
}

func (b AccuracyBar) View() string {
	fill := theme.Clay
	switch {
	case b.Accuracy >= 0.8:
		fill = theme.Leaf
	case b.Accuracy >= 0.5:
		fill = theme.Brass
	}

	width := b.Width
	if width < 10 {
		width = 10
	}

	filled := int(float64(width)*b.Accuracy + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	var out string
	if b.Label != "" {
		out = theme.Body.Render(b.Label) + "  "
	}
	out += lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("▰", filled))
	out += lipgloss.NewStyle().Foreground(theme.Frame).Render(strings.Repeat("▱", width-filled))
	out += lipgloss.NewStyle().Foreground(theme.ChalkDim).Render(fmt.Sprintf("  %d%%", int(b.Accuracy*100+0.5)))
	return out
}
