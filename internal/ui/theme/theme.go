// Package theme holds the palette and shared styles. The look is a
// chalkboard: deep green surfaces, chalk text, brass for whatever should
// catch the eye, leaf and clay for right and wrong answers.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette
var (
	Chalk    = lipgloss.Color("#ECE8DC") // main text
	ChalkDim = lipgloss.Color("#8F9A94") // secondary text
	Board    = lipgloss.Color("#14201C") // app background
	Surface  = lipgloss.Color("#1E2E28") // raised surfaces
	Frame    = lipgloss.Color("#3C544B") // borders, inactive marks
	Brass    = lipgloss.Color("#D9A84E") // focus, highlights
	Leaf     = lipgloss.Color("#7FC786") // right answers, good accuracy
	Clay     = lipgloss.Color("#D96C5F") // wrong answers, errors
	Slate    = lipgloss.Color("#6FA3BF") // neutral fills
)

// Text styles
var (
	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Brass).
		Align(lipgloss.Center)

	Caption = lipgloss.NewStyle().
		Foreground(ChalkDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Chalk)

	Hint = lipgloss.NewStyle().
		Foreground(ChalkDim).
		Italic(true)
)

// Answer verdicts
var (
	Right = lipgloss.NewStyle().
		Foreground(Leaf).
		Bold(true)

	Wrong = lipgloss.NewStyle().
		Foreground(Clay).
		Bold(true)
)

// List focus states
var (
	Focused = lipgloss.NewStyle().
		Foreground(Brass).
		Bold(true)

	Blurred = lipgloss.NewStyle().
		Foreground(Chalk)
)

// Panel frames screen content in a bordered box on a raised surface.
var Panel = lipgloss.NewStyle().
	Background(Surface).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Frame).
	Padding(1, 3)
