// Package practice runs a session page by page: it presents each problem,
// records answers, and shows a page report before moving on.
package practice

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/vinciapp/vinci/internal/router"
	"github.com/vinciapp/vinci/internal/screen"
	"github.com/vinciapp/vinci/internal/screens/summary"
	"github.com/vinciapp/vinci/internal/session"
	"github.com/vinciapp/vinci/internal/store"
	"github.com/vinciapp/vinci/internal/ui/components"
	"github.com/vinciapp/vinci/internal/ui/layout"
)

// Params carries the configuration collected by the setup screen.
type Params struct {
	ConceptIDs        []string
	TotalStudySeconds int
	TotalPages        int
	GradeLevel        string
}

// PracticeScreen implements screen.Screen for an active session.
type PracticeScreen struct {
	manager *session.Manager
	repo    store.SessionRepo // nil when running without persistence
	params  Params

	sess       *session.Session
	page       *session.Page
	problemIdx int
	target     int // seconds budgeted for the current page

	input components.AnswerField

	showingFeedback   bool
	lastCorrect       bool
	showingPageResult bool
	lastResult        session.SubmitResult

	errMsg string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.PageInfoProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen. The session itself is created in Init.
func New(manager *session.Manager, repo store.SessionRepo, params Params) *PracticeScreen {
	return &PracticeScreen{
		manager: manager,
		repo:    repo,
		params:  params,
		input:   components.NewAnswerField(),
	}
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

// PageInfo reports the current page for the header.
func (p *PracticeScreen) PageInfo() (page, total int) {
	if p.sess == nil || p.page == nil {
		return 0, 0
	}
	return p.page.Number, p.sess.TotalPages
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case p.showingFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case p.showingPageResult:
		return []layout.KeyHint{{Key: "Enter", Description: "Next page"}}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit session"},
		}
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(p.createSession(), p.input.Init())
}

// createSession builds the session and its first page.
func (p *PracticeScreen) createSession() tea.Cmd {
	return func() tea.Msg {
		sess, err := p.manager.CreateFirstPage(
			p.params.ConceptIDs,
			p.params.TotalStudySeconds,
			p.params.TotalPages,
			p.params.GradeLevel,
		)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		p.save(sess)
		return sessionReadyMsg{Sess: sess}
	}
}

// nextPage generates the page after the one just submitted.
func (p *PracticeScreen) nextPage(number int) tea.Cmd {
	sess := p.sess
	return func() tea.Msg {
		page, err := p.manager.GetOrCreatePage(sess, number)
		if err != nil {
			return pageReadyMsg{Err: err}
		}
		p.save(sess)
		return pageReadyMsg{Page: page}
	}
}

// save persists the session when a repository is wired. Persistence failures
// never interrupt play.
func (p *PracticeScreen) save(sess *session.Session) {
	if p.repo == nil {
		return
	}
	_ = p.repo.Save(context.Background(), sess)
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.sess = msg.Sess
		return p.startPage(msg.Sess.Pages[0])

	case pageReadyMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		return p.startPage(msg.Page)

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.answering() {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

// startPage resets per-page state for a freshly generated page.
func (p *PracticeScreen) startPage(page *session.Page) (screen.Screen, tea.Cmd) {
	p.page = page
	p.problemIdx = 0
	p.showingFeedback = false
	p.showingPageResult = false
	p.input = components.NewAnswerField()

	target, err := p.manager.PageTargetTime(p.sess, page.Number)
	if err == nil {
		p.target = target
	}
	return p, p.input.Init()
}

// answering reports whether keystrokes should reach the answer input.
func (p *PracticeScreen) answering() bool {
	return p.sess != nil && p.page != nil &&
		!p.showingFeedback && !p.showingPageResult && p.errMsg == ""
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if p.sess == nil || p.page == nil {
		return p, nil
	}

	// Feedback overlay: any key advances.
	if p.showingFeedback {
		p.showingFeedback = false
		p.problemIdx++
		if p.problemIdx >= len(p.page.Problems) {
			return p.finishPage()
		}
		p.input = components.NewAnswerField()
		return p, p.input.Init()
	}

	// Page report: enter moves to the next page or the summary.
	if p.showingPageResult {
		if msg.String() != "enter" {
			return p, nil
		}
		if p.page.Number >= p.sess.TotalPages {
			sess := p.sess
			return p, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: summary.New(sess)}
			}
		}
		return p, p.nextPage(p.page.Number + 1)
	}

	switch msg.String() {
	case "enter":
		return p.submitAnswer()
	default:
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
}

// submitAnswer records the typed answer for the current problem.
func (p *PracticeScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer := p.input.Value()
	if answer == "" {
		return p, nil
	}

	problem := p.page.Problems[p.problemIdx]
	score, err := p.manager.SubmitAnswer(p.sess, p.page.Number, problem.Number, answer)
	if err != nil {
		p.errMsg = err.Error()
		return p, nil
	}

	p.lastCorrect = score > 0
	p.input.Grade(p.lastCorrect, problem.Answer)
	p.showingFeedback = true
	p.save(p.sess)
	return p, nil
}

// finishPage locks the page and shows its report.
func (p *PracticeScreen) finishPage() (screen.Screen, tea.Cmd) {
	result, err := p.manager.SubmitPage(p.sess, p.page.Number)
	if err != nil {
		p.errMsg = err.Error()
		return p, nil
	}
	p.lastResult = result
	p.showingPageResult = true
	p.save(p.sess)
	return p, nil
}
