// Package setup collects the session parameters before practice begins:
// grade level, concepts, study time, and page count.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/vinciapp/vinci/internal/concepts"
	"github.com/vinciapp/vinci/internal/grades"
	"github.com/vinciapp/vinci/internal/router"
	"github.com/vinciapp/vinci/internal/screen"
	"github.com/vinciapp/vinci/internal/screens/practice"
	"github.com/vinciapp/vinci/internal/session"
	"github.com/vinciapp/vinci/internal/store"
	"github.com/vinciapp/vinci/internal/ui/components"
	"github.com/vinciapp/vinci/internal/ui/layout"
	"github.com/vinciapp/vinci/internal/ui/theme"
)

// stage is the current step of the setup flow.
type stage int

const (
	stageGrade stage = iota
	stageConcepts
	stageMinutes
	stagePages
)

const (
	defaultMinutes = 10
	defaultPages   = 2
)

// SetupScreen walks through session configuration and launches practice.
type SetupScreen struct {
	manager *session.Manager
	repo    store.SessionRepo // nil when running without persistence

	stage       stage
	gradePicker components.Picker
	grade       grades.Grade

	conceptList components.Checklist

	minutesField components.NumberField
	minutes      int
	pagesField   components.NumberField

	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen. repo may be nil for in-memory practice.
func New(manager *session.Manager, repo store.SessionRepo) *SetupScreen {
	s := &SetupScreen{
		manager: manager,
		repo:    repo,
	}

	items := make([]components.PickItem, 0, len(grades.All()))
	for _, g := range grades.All() {
		grade := g
		items = append(items, components.PickItem{
			Label: string(grade),
			Pick:  func() tea.Cmd { return s.selectGrade(grade) },
		})
	}
	s.gradePicker = components.NewPicker(items)
	return s
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.stage {
	case stageConcepts:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case stageMinutes, stagePages:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

// selectGrade records the grade and loads grade-appropriate concepts.
func (s *SetupScreen) selectGrade(g grades.Grade) tea.Cmd {
	s.grade = g

	infos, err := concepts.List(g)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	if len(infos) == 0 {
		s.errMsg = fmt.Sprintf("no concepts available for %s", g)
		return nil
	}

	items := make([]components.ChecklistItem, 0, len(infos))
	for _, info := range infos {
		items = append(items, components.ChecklistItem{
			ID:    info.ID,
			Label: info.DisplayName,
		})
	}
	s.conceptList = components.NewChecklist(items)
	s.stage = stageConcepts
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.updateInputs(msg)
	}

	if s.errMsg != "" {
		s.errMsg = ""
		return s, nil
	}

	switch s.stage {
	case stageGrade:
		var cmd tea.Cmd
		s.gradePicker, cmd = s.gradePicker.Update(msg)
		return s, cmd

	case stageConcepts:
		if kmsg.String() == "enter" {
			if len(s.conceptList.Checked()) == 0 {
				s.errMsg = "pick at least one concept"
				return s, nil
			}
			s.minutesField = components.NewNumberField(defaultMinutes, 3)
			s.stage = stageMinutes
			return s, s.minutesField.Init()
		}
		var cmd tea.Cmd
		s.conceptList, cmd = s.conceptList.Update(msg)
		return s, cmd

	case stageMinutes:
		if kmsg.String() == "enter" {
			minutes := s.minutesField.Value()
			if minutes < 1 {
				s.errMsg = "study time must be at least 1 minute"
				return s, nil
			}
			s.minutes = minutes
			s.pagesField = components.NewNumberField(defaultPages, 2)
			s.stage = stagePages
			return s, s.pagesField.Init()
		}
		var cmd tea.Cmd
		s.minutesField, cmd = s.minutesField.Update(msg)
		return s, cmd

	case stagePages:
		if kmsg.String() == "enter" {
			pages := s.pagesField.Value()
			if pages < session.MinPages || pages > session.MaxPages {
				s.errMsg = fmt.Sprintf("pages must be between %d and %d", session.MinPages, session.MaxPages)
				return s, nil
			}
			return s, s.startPractice(pages)
		}
		var cmd tea.Cmd
		s.pagesField, cmd = s.pagesField.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SetupScreen) updateInputs(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.stage {
	case stageMinutes:
		s.minutesField, cmd = s.minutesField.Update(msg)
	case stagePages:
		s.pagesField, cmd = s.pagesField.Update(msg)
	}
	return s, cmd
}

// startPractice pushes the practice screen with the collected parameters.
func (s *SetupScreen) startPractice(pages int) tea.Cmd {
	params := practice.Params{
		ConceptIDs:        s.conceptList.Checked(),
		TotalStudySeconds: s.minutes * 60,
		TotalPages:        pages,
		GradeLevel:        string(s.grade),
	}
	practiceScreen := practice.New(s.manager, s.repo, params)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: practiceScreen}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	title := theme.Heading.Render("Set up your practice")
	b.WriteString(title + "\n\n")

	switch s.stage {
	case stageGrade:
		b.WriteString(theme.Body.Render("What grade are you in?") + "\n\n")
		b.WriteString(s.gradePicker.View())

	case stageConcepts:
		b.WriteString(theme.Body.Render(fmt.Sprintf("Pick concepts for %s:", s.grade)) + "\n\n")
		b.WriteString(s.conceptList.View())

	case stageMinutes:
		b.WriteString(theme.Body.Render("How many minutes do you want to study?") + "\n\n")
		b.WriteString("  " + s.minutesField.View())

	case stagePages:
		b.WriteString(theme.Body.Render(fmt.Sprintf("How many pages? (%d-%d)", session.MinPages, session.MaxPages)) + "\n\n")
		b.WriteString("  " + s.pagesField.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n\n" + theme.Wrong.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
