// Package tutorial implements the step-by-step walkthrough of a technique.
package tutorial

import (
	"context"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/vedic/internal/catalog"
	"github.com/abhisek/vedic/internal/generation"
	"github.com/abhisek/vedic/internal/screen"
	"github.com/abhisek/vedic/internal/session"
	"github.com/abhisek/vedic/internal/ui/components"
	"github.com/abhisek/vedic/internal/ui/layout"
)

// tutorialMsg carries a generated tutorial back to the screen that asked
// for it.
type tutorialMsg struct {
	screenID uuid.UUID
	tutorial *generation.Tutorial
	err      error
}

// Screen walks through one generated tutorial.
type Screen struct {
	id        uuid.UUID
	source    generation.Source
	technique catalog.Technique

	loading  bool
	tutorial *generation.Tutorial
	position int
	err      error

	loader   components.Loader
	viewport viewport.Model
	follow   bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a tutorial screen for t.
func New(source generation.Source, t catalog.Technique) *Screen {
	return &Screen{
		id:        uuid.New(),
		source:    source,
		technique: t,
		loader:    components.NewLoader("Preparing Lesson..."),
		viewport:  viewport.New(),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.load()
}

func (s *Screen) Title() string {
	return "Tutorial: " + s.technique.Name
}

func (s *Screen) load() tea.Cmd {
	s.loading = true
	s.err = nil
	id, src, t := s.id, s.source, s.technique
	return tea.Batch(s.loader.Tick(), func() tea.Msg {
		tut, err := src.Tutorial(context.Background(), t)
		return tutorialMsg{screenID: id, tutorial: tut, err: err}
	})
}

// Loading reports whether the tutorial is still being generated.
func (s *Screen) Loading() bool { return s.loading }

// Tutorial returns the loaded tutorial, or nil.
func (s *Screen) Tutorial() *generation.Tutorial { return s.tutorial }

// Position returns the index of the last revealed step.
func (s *Screen) Position() int { return s.position }

// Complete reports whether every step has been revealed. A tutorial with
// no steps is complete as soon as it loads.
func (s *Screen) Complete() bool {
	if s.tutorial == nil {
		return false
	}
	return s.position >= len(s.tutorial.Steps)-1
}

// Advance reveals the next step. It does nothing at the last step.
func (s *Screen) Advance() {
	if s.tutorial == nil || s.Complete() {
		return
	}
	s.position++
	s.follow = true
}

// StartPractice hands the technique over to practice mode.
func (s *Screen) StartPractice() tea.Cmd {
	return session.Send(session.StartPracticeMsg{})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tutorialMsg:
		if msg.screenID != s.id || !s.loading {
			return s, nil
		}
		s.loading = false
		if msg.err != nil || msg.tutorial == nil {
			s.err = msg.err
			return s, nil
		}
		s.tutorial = msg.tutorial
		s.position = 0
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	if s.loading {
		var cmd tea.Cmd
		s.loader, cmd = s.loader.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if s.loading {
		return nil
	}

	key := msg.String()
	if key == "p" {
		return s.StartPractice()
	}

	if s.tutorial == nil {
		if key == "r" {
			return s.load()
		}
		return nil
	}

	switch key {
	case "enter", "space", "right":
		s.Advance()
		return nil
	case "up", "down", "pgup", "pgdown", "k", "j":
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.loading {
		return []layout.KeyHint{{Key: "Esc", Description: "Menu"}}
	}
	if s.tutorial == nil {
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "P", Description: "Try a puzzle"},
			{Key: "Esc", Description: "Menu"},
		}
	}
	hints := make([]layout.KeyHint, 0, 4)
	if !s.Complete() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next step"})
	}
	return append(hints,
		layout.KeyHint{Key: "↑↓", Description: "Scroll"},
		layout.KeyHint{Key: "P", Description: "Try a puzzle"},
		layout.KeyHint{Key: "Esc", Description: "Menu"},
	)
}
