// Package session holds the cross-screen session state and the transition
// table that mutates it.
package session

import "github.com/abhisek/vedic/internal/catalog"

// View is the top-level view the app shows.
type View int

const (
	ViewMenu    View = iota // Technique selector
	ViewSession             // Active practice or tutorial
)

func (v View) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSession:
		return "session"
	default:
		return "unknown"
	}
}

// Mode selects what an active session runs.
type Mode string

const (
	ModePractice Mode = "practice"
	ModeTutorial Mode = "tutorial"
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeTutorial {
		return ModePractice
	}
	return ModeTutorial
}

// Scoring constants for a solved puzzle: BasePoints + StreakBonus*streak.
const (
	BasePoints  = 10
	StreakBonus = 2
)

// State is a snapshot of the session.
type State struct {
	View     View
	Mode     Mode
	Selected *catalog.Technique
	Score    int
	Streak   int
}

// Reader gives screens read access to the session without the ability to
// mutate it. Screens report outcomes with messages instead.
type Reader interface {
	State() State
}

// Controller owns the session state. It performs no I/O.
type Controller struct {
	state State
}

var _ Reader = (*Controller)(nil)

// NewController returns a controller in the menu view, practice mode,
// with no selection and zero score and streak.
func NewController() *Controller {
	return &Controller{state: State{View: ViewMenu, Mode: ModePractice}}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	if s.Selected != nil {
		t := *s.Selected
		s.Selected = &t
	}
	return s
}

// SelectTechnique starts a session for t in the current mode. It is
// ignored while a session is already active.
func (c *Controller) SelectTechnique(t catalog.Technique) bool {
	if c.state.View == ViewSession {
		return false
	}
	c.state.Selected = &t
	c.state.View = ViewSession
	return true
}

// BackToMenu abandons any active session and returns to the menu.
func (c *Controller) BackToMenu() {
	c.state.Selected = nil
	c.state.View = ViewMenu
}

// Solved awards points for a solved puzzle and extends the streak. It
// returns the points awarded.
func (c *Controller) Solved() int {
	points := BasePoints + StreakBonus*c.state.Streak
	c.state.Score += points
	c.state.Streak++
	return points
}

// Failed resets the streak.
func (c *Controller) Failed() {
	c.state.Streak = 0
}

// SetMode changes the mode used by the next session. It reports whether
// the mode changed.
func (c *Controller) SetMode(m Mode) bool {
	if m != ModePractice && m != ModeTutorial {
		return false
	}
	if c.state.Mode == m {
		return false
	}
	c.state.Mode = m
	return true
}

// StartPracticeFromTutorial switches an active session to practice for
// the same technique.
func (c *Controller) StartPracticeFromTutorial() bool {
	if c.state.View != ViewSession {
		return false
	}
	c.state.Mode = ModePractice
	return true
}

// Apply dispatches a session message to the matching transition. It
// reports whether msg was a session message.
func (c *Controller) Apply(msg any) bool {
	switch msg := msg.(type) {
	case SelectMsg:
		c.SelectTechnique(msg.Technique)
	case BackMsg:
		c.BackToMenu()
	case SolvedMsg:
		c.Solved()
	case FailedMsg:
		c.Failed()
	case SetModeMsg:
		c.SetMode(msg.Mode)
	case StartPracticeMsg:
		c.StartPracticeFromTutorial()
	default:
		return false
	}
	return true
}
