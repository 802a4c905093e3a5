package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vinciapp/vinci/internal/ui/components"
	"github.com/vinciapp/vinci/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	switch {
	case p.errMsg != "":
		return renderError(width, height, p.errMsg)
	case p.sess == nil || p.page == nil:
		return renderLoading(width, height)
	case p.showingPageResult:
		return p.renderPageResult(width, height)
	default:
		return p.renderProblem(width, height)
	}
}

func renderLoading(width, height int) string {
	msg := theme.Hint.Render("Building your page...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func renderError(width, height int, errMsg string) string {
	content := theme.Wrong.Render("Something went wrong") + "\n\n" +
		theme.Body.Render(errMsg) + "\n\n" +
		theme.Hint.Render("press any key to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// verdictsSoFar collects right/wrong for the problems already answered on
// the current page, in problem order.
func (p *PracticeScreen) verdictsSoFar() []bool {
	n := p.problemIdx
	if p.showingFeedback {
		n++
	}
	verdicts := make([]bool, 0, n)
	for _, problem := range p.page.Problems[:n] {
		verdicts = append(verdicts, problem.Score > 0)
	}
	return verdicts
}

func (p *PracticeScreen) renderProblem(width, height int) string {
	problem := p.page.Problems[p.problemIdx]

	var b strings.Builder

	meter := components.PageMeter{
		Total:   len(p.page.Problems),
		Current: p.problemIdx,
		Right:   p.verdictsSoFar(),
	}
	b.WriteString(meter.View() + "\n\n\n")

	question := lipgloss.NewStyle().
		Foreground(theme.Chalk).
		Bold(true).
		Render(problem.Question + " = ?")
	b.WriteString(question + "\n\n")

	b.WriteString(p.input.View())

	card := theme.Panel.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (p *PracticeScreen) renderPageResult(width, height int) string {
	perf := p.lastResult.Performance

	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("Page %d done!", p.lastResult.PageNumber)) + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Correct: %d of %d", perf.CorrectAnswers, perf.TotalProblems)) + "\n")

	accuracy := components.AccuracyBar{Label: "Accuracy", Accuracy: perf.Accuracy, Width: 40}
	b.WriteString(accuracy.View() + "\n")

	if p.target > 0 && p.page.Number < p.sess.TotalPages {
		b.WriteString("\n" + theme.Hint.Render("Next page is tuned to how you did here.") + "\n")
	}

	b.WriteString("\n")
	if p.page.Number >= p.sess.TotalPages {
		b.WriteString(theme.Hint.Render("press enter to see your results"))
	} else {
		b.WriteString(theme.Hint.Render("press enter for the next page"))
	}

	card := theme.Panel.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
