// Package menu implements the technique selector.
package menu

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vedic/internal/catalog"
	"github.com/abhisek/vedic/internal/generation"
	"github.com/abhisek/vedic/internal/screen"
	"github.com/abhisek/vedic/internal/session"
	"github.com/abhisek/vedic/internal/ui/components"
	"github.com/abhisek/vedic/internal/ui/layout"
)

type rowKind int

const (
	rowDifficultyHeader rowKind = iota
	rowCard
)

type row struct {
	kind       rowKind
	difficulty catalog.Difficulty
	card       *card
}

// Screen lists the catalog grouped by difficulty.
type Screen struct {
	source  generation.Source
	session session.Reader

	rows         []row
	cursor       int
	scrollOffset int
	loader       components.Loader
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a selector with a fresh card for every technique. reader
// may be nil, in which case the mode is shown as practice.
func New(source generation.Source, reader session.Reader) *Screen {
	var rows []row
	for _, d := range catalog.AllDifficulties() {
		techniques := catalog.ByDifficulty(d)
		if len(techniques) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowDifficultyHeader, difficulty: d})
		for _, t := range techniques {
			rows = append(rows, row{kind: rowCard, difficulty: d, card: newCard(t)})
		}
	}

	s := &Screen{
		source:  source,
		session: reader,
		rows:    rows,
		loader:  components.NewLoader("Consulting the Sages..."),
	}

	for i, r := range s.rows {
		if r.kind == rowCard {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Master the Sutras"
}

// Current returns the technique under the cursor.
func (s *Screen) Current() catalog.Technique {
	return s.rows[s.cursor].card.technique
}

// Expanded reports whether the card under the cursor is expanded.
func (s *Screen) Expanded() bool {
	return s.rows[s.cursor].card.expanded
}

// Detail returns the cached detail of the card under the cursor, or nil.
func (s *Screen) Detail() *generation.Detail {
	return s.rows[s.cursor].card.slot.detail
}

func (s *Screen) mode() session.Mode {
	if s.session == nil {
		return session.ModePractice
	}
	return s.session.State().Mode
}

// Expand toggles the card under the cursor. Only the first expansion of
// a card fetches its detail.
func (s *Screen) Expand() tea.Cmd {
	c := s.rows[s.cursor].card
	cmd := c.toggle(s.source)
	if cmd == nil {
		return nil
	}
	return tea.Batch(s.loader.Tick(), cmd)
}

// Retry refetches the detail of the card under the cursor after a failure.
func (s *Screen) Retry() tea.Cmd {
	cmd := s.rows[s.cursor].card.retry(s.source)
	if cmd == nil {
		return nil
	}
	return tea.Batch(s.loader.Tick(), cmd)
}

// Select reports the technique under the cursor to the session.
func (s *Screen) Select() tea.Cmd {
	return session.Send(session.SelectMsg{Technique: s.Current()})
}

// ToggleMode switches between practice and tutorial.
func (s *Screen) ToggleMode() tea.Cmd {
	return session.Send(session.SetModeMsg{Mode: s.mode().Toggle()})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailMsg:
		for _, r := range s.rows {
			if r.card != nil && r.card.id == msg.cardID {
				r.card.fill(msg)
				break
			}
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "enter":
			return s, s.Select()
		case "space", "right", "l", "e":
			return s, s.Expand()
		case "r":
			return s, s.Retry()
		case "tab":
			return s, s.ToggleMode()
		}
		return s, nil
	}

	if s.fetching() {
		var cmd tea.Cmd
		s.loader, cmd = s.loader.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) fetching() bool {
	for _, r := range s.rows {
		if r.card != nil && r.card.slot.state == slotLoading {
			return true
		}
	}
	return false
}

// moveCursor moves the cursor by delta, skipping difficulty headers.
func (s *Screen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowCard {
			s.cursor = next
			return
		}
		next += delta
	}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	next := "Tutorial"
	if s.mode() == session.ModeTutorial {
		next = "Practice"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Details"},
		{Key: "Enter", Description: "Start"},
		{Key: "Tab", Description: next + " mode"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
