package session

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vedic/internal/catalog"
)

// SelectMsg is sent by the menu when a technique is chosen.
type SelectMsg struct {
	Technique catalog.Technique
}

// BackMsg returns to the menu.
type BackMsg struct{}

// SolvedMsg reports a correctly answered puzzle.
type SolvedMsg struct{}

// FailedMsg reports a puzzle the user gave up on.
type FailedMsg struct{}

// SetModeMsg changes the session mode.
type SetModeMsg struct {
	Mode Mode
}

// StartPracticeMsg switches a tutorial session to practice.
type StartPracticeMsg struct{}

// Send wraps msg in a command.
func Send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
