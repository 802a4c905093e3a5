package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vinciapp/vinci/internal/router"
	"github.com/vinciapp/vinci/internal/screen"
	"github.com/vinciapp/vinci/internal/screens/setup"
	"github.com/vinciapp/vinci/internal/session"
	"github.com/vinciapp/vinci/internal/store"
	"github.com/vinciapp/vinci/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the setup screen.
func newAppModel(manager *session.Manager, repo store.SessionRepo) AppModel {
	return AppModel{
		router: router.New(setup.New(manager, repo)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	page, totalPages := 0, 0
	if pp, ok := active.(screen.PageInfoProvider); ok {
		page, totalPages = pp.PageInfo()
	}

	header := layout.RenderHeader(title, page, totalPages, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program. repo may be nil to practice without
// persistence.
func Run(manager *session.Manager, repo store.SessionRepo) error {
	p := tea.NewProgram(newAppModel(manager, repo))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
