// Package summary shows the end-of-session report: overall score, a
// celebration scaled to it, and per-page accuracy.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vinciapp/vinci/internal/celebrate"
	"github.com/vinciapp/vinci/internal/screen"
	"github.com/vinciapp/vinci/internal/session"
	"github.com/vinciapp/vinci/internal/ui/components"
	"github.com/vinciapp/vinci/internal/ui/layout"
	"github.com/vinciapp/vinci/internal/ui/theme"
)

// SummaryScreen displays the final report for a completed session.
type SummaryScreen struct {
	sess   *session.Session
	button components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the given session.
func New(sess *session.Session) *SummaryScreen {
	return &SummaryScreen{
		sess:   sess,
		button: components.NewButton("Done", func() tea.Cmd { return tea.Quit }),
	}
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.button, cmd = s.button.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	score := s.sess.ScorePercentage()

	var b strings.Builder

	if c := celebrate.ForScore(score); c != nil {
		style := lipgloss.NewStyle().Foreground(theme.Leaf).Bold(true)
		if c.Intensity >= 6 {
			style = lipgloss.NewStyle().Foreground(theme.Brass).Bold(true)
		}
		b.WriteString(style.Render(c.Message) + "\n")
		b.WriteString(theme.Caption.Render(c.SubMessage) + "\n\n")
	}

	b.WriteString(theme.Body.Render(fmt.Sprintf("Overall score: %.0f%%", score)) + "\n\n")

	for _, page := range s.sess.Pages {
		perf := page.Performance()
		bar := components.AccuracyBar{
			Label:    fmt.Sprintf("Page %d", page.Number),
			Accuracy: perf.Accuracy,
			Width:    36,
		}
		b.WriteString(bar.View() + "\n")
	}

	b.WriteString("\n" + s.button.View())

	card := theme.Panel.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
