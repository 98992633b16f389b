// Package practice implements the scored puzzle loop for one technique.
package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/vedic/internal/catalog"
	"github.com/abhisek/vedic/internal/generation"
	"github.com/abhisek/vedic/internal/screen"
	"github.com/abhisek/vedic/internal/session"
	"github.com/abhisek/vedic/internal/ui/components"
	"github.com/abhisek/vedic/internal/ui/layout"
)

// ShakeDuration is how long the answer field shakes after a wrong answer.
const ShakeDuration = 300 * time.Millisecond

// Phase is the state of the current round.
type Phase int

const (
	PhaseLoading   Phase = iota // Waiting for a puzzle
	PhaseIdle                   // Puzzle shown, no answer checked yet
	PhaseIncorrect              // Last submission was wrong
	PhaseCorrect                // Solved
	PhaseRevealed               // User gave up
	PhaseFailed                 // Generation failed and the error was surfaced
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseIdle:
		return "idle"
	case PhaseIncorrect:
		return "incorrect"
	case PhaseCorrect:
		return "correct"
	case PhaseRevealed:
		return "revealed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// answering reports whether the user can still work on the puzzle.
func (p Phase) answering() bool {
	return p == PhaseIdle || p == PhaseIncorrect
}

// finished reports whether the round is over.
func (p Phase) finished() bool {
	return p == PhaseCorrect || p == PhaseRevealed
}

// puzzleMsg carries a generated puzzle back to the screen that asked for it.
type puzzleMsg struct {
	screenID uuid.UUID
	puzzle   *generation.Puzzle
	err      error
}

// shakeDoneMsg ends the shake started by the submission numbered seq.
type shakeDoneMsg struct {
	screenID uuid.UUID
	seq      int
}

// Screen is the practice loop for one technique.
type Screen struct {
	id        uuid.UUID
	source    generation.Source
	session   session.Reader
	technique catalog.Technique

	phase    Phase
	puzzle   *generation.Puzzle
	input    components.TextInput
	loader   components.Loader
	showHint bool
	shakeSeq int
	err      error
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a practice screen. reader may be nil.
func New(source generation.Source, reader session.Reader, t catalog.Technique) *Screen {
	return &Screen{
		id:        uuid.New(),
		source:    source,
		session:   reader,
		technique: t,
		input:     newAnswerInput(),
		loader:    components.NewLoader("Consulting the Sages..."),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("?", true, 24)
}

func (s *Screen) Init() tea.Cmd {
	return s.activate()
}

func (s *Screen) Title() string {
	return s.technique.Name
}

// Phase returns the current round state.
func (s *Screen) Phase() Phase { return s.phase }

// Puzzle returns the puzzle on screen, or nil while loading.
func (s *Screen) Puzzle() *generation.Puzzle { return s.puzzle }

// Answer returns the text in the answer field.
func (s *Screen) Answer() string { return s.input.Value() }

// HintVisible reports whether the hint is shown.
func (s *Screen) HintVisible() bool { return s.showHint }

// Shaking reports whether the answer field is shaking.
func (s *Screen) Shaking() bool { return s.input.Shake }

// activate enters the loading state and requests a puzzle.
func (s *Screen) activate() tea.Cmd {
	s.phase = PhaseLoading
	s.puzzle = nil
	s.err = nil
	s.showHint = false
	s.input = newAnswerInput()
	return tea.Batch(s.loader.Tick(), s.fetch())
}

func (s *Screen) fetch() tea.Cmd {
	id, src, t := s.id, s.source, s.technique
	return func() tea.Msg {
		p, err := src.Puzzle(context.Background(), t)
		return puzzleMsg{screenID: id, puzzle: p, err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case puzzleMsg:
		if msg.screenID != s.id || s.phase != PhaseLoading {
			return s, nil
		}
		return s, s.handlePuzzle(msg)

	case shakeDoneMsg:
		if msg.screenID == s.id && msg.seq == s.shakeSeq {
			s.input.Shake = false
		}
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	if s.phase == PhaseLoading {
		var cmd tea.Cmd
		s.loader, cmd = s.loader.Update(msg)
		return s, cmd
	}
	if s.phase.answering() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handlePuzzle(msg puzzleMsg) tea.Cmd {
	if msg.err != nil || msg.puzzle == nil {
		s.phase = PhaseFailed
		s.err = msg.err
		return nil
	}
	s.puzzle = msg.puzzle
	s.phase = PhaseIdle
	s.showHint = false
	s.input = newAnswerInput()
	return s.input.Init()
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	switch {
	case s.phase == PhaseFailed:
		if key == "r" {
			return s.activate()
		}
		return nil

	case s.phase.finished():
		if key == "enter" || key == "n" {
			return s.NextPuzzle()
		}
		return nil

	case s.phase.answering():
		switch key {
		case "enter":
			return s.SubmitAnswer(s.input.Value())
		case "ctrl+r":
			s.Reset()
			return nil
		case "ctrl+g":
			return s.GiveUp()
		case "ctrl+h", "?":
			s.ToggleHint()
			return nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}
	return nil
}

// SubmitAnswer checks text against the puzzle's answer. Anything that is
// not a number equal to the answer counts as incorrect.
func (s *Screen) SubmitAnswer(text string) tea.Cmd {
	if !s.phase.answering() {
		return nil
	}
	if text != s.input.Value() {
		s.input.SetValue(text)
	}

	if s.puzzle.Check(text) {
		s.phase = PhaseCorrect
		s.input.Submit(true)
		s.input.Shake = false
		s.input.Blur()
		return session.Send(session.SolvedMsg{})
	}

	s.phase = PhaseIncorrect
	s.input.Submit(false)
	s.input.Shake = true
	s.shakeSeq++
	id, seq := s.id, s.shakeSeq
	return tea.Tick(ShakeDuration, func(time.Time) tea.Msg {
		return shakeDoneMsg{screenID: id, seq: seq}
	})
}

// Reset clears the answer and hint without fetching a new puzzle.
func (s *Screen) Reset() {
	if !s.phase.answering() {
		return
	}
	s.input.Reset()
	s.showHint = false
	s.phase = PhaseIdle
}

// GiveUp reveals the answer and reports the round as failed.
func (s *Screen) GiveUp() tea.Cmd {
	if !s.phase.answering() {
		return nil
	}
	s.phase = PhaseRevealed
	s.showHint = false
	s.input.SetValue(generation.FormatAnswer(s.puzzle.Answer))
	s.input.Shake = false
	s.input.Blur()
	return session.Send(session.FailedMsg{})
}

// ToggleHint shows or hides the hint while the puzzle is being worked on.
func (s *Screen) ToggleHint() {
	if !s.phase.answering() {
		return
	}
	s.showHint = !s.showHint
}

// NextPuzzle starts a new round with the same technique.
func (s *Screen) NextPuzzle() tea.Cmd {
	if !s.phase.finished() {
		return nil
	}
	return s.activate()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.phase == PhaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "Esc", Description: "Menu"},
		}
	case s.phase.finished():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next puzzle"},
			{Key: "Esc", Description: "Menu"},
		}
	case s.phase.answering():
		hint := "Hint"
		if s.showHint {
			hint = "Hide hint"
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Ctrl+R", Description: "Reset"},
			{Key: "Ctrl+G", Description: "Show me"},
			{Key: "?", Description: hint},
			{Key: "Esc", Description: "Menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Menu"},
	}
}
