package menu

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/vedic/internal/catalog"
	"github.com/abhisek/vedic/internal/generation"
	"github.com/abhisek/vedic/internal/session"
)

type fakeSource struct {
	err   error
	calls map[string]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{calls: map[string]int{}}
}

func (f *fakeSource) Puzzle(context.Context, catalog.Technique) (*generation.Puzzle, error) {
	return nil, errors.New("not used")
}

func (f *fakeSource) Tutorial(context.Context, catalog.Technique) (*generation.Tutorial, error) {
	return nil, errors.New("not used")
}

func (f *fakeSource) Detail(_ context.Context, t catalog.Technique) (*generation.Detail, error) {
	f.calls[t.ID]++
	if f.err != nil {
		return nil, f.err
	}
	return &generation.Detail{
		Summary:  "About " + t.Name,
		UseCases: []string{"one", "two", "three"},
		DeepDive: "deep",
	}, nil
}

// run executes cmd and feeds every resulting message back into s.
func run(s *Screen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			run(s, c)
		}
		return
	}
	if _, ok := msg.(detailMsg); ok {
		s.Update(msg)
	}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestNew_GroupedByDifficulty(t *testing.T) {
	s := New(newFakeSource(), nil)

	var order []catalog.Difficulty
	cards := 0
	for _, r := range s.rows {
		switch r.kind {
		case rowDifficultyHeader:
			order = append(order, r.difficulty)
		case rowCard:
			cards++
			if r.card.technique.Difficulty != r.difficulty {
				t.Errorf("%s listed under %s", r.card.technique.ID, r.difficulty)
			}
		}
	}
	if cards != len(catalog.All()) {
		t.Errorf("expected %d cards, got %d", len(catalog.All()), cards)
	}
	want := catalog.AllDifficulties()
	if len(order) != len(want) {
		t.Fatalf("headers = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("header %d = %s, want %s", i, order[i], want[i])
		}
	}
	if s.rows[s.cursor].kind != rowCard {
		t.Error("cursor starts on a header")
	}
}

func TestCursor_SkipsHeaders(t *testing.T) {
	s := New(newFakeSource(), nil)
	for range len(s.rows) * 2 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		if s.rows[s.cursor].kind != rowCard {
			t.Fatal("cursor landed on a header")
		}
	}
	last := s.cursor
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.cursor != last {
		t.Error("cursor moved past the last card")
	}
	for range len(s.rows) * 2 {
		s.Update(key('k'))
	}
	if s.Current().Difficulty != catalog.Beginner {
		t.Errorf("expected first card to be a beginner technique, got %s", s.Current().Difficulty)
	}
}

func TestExpand_FetchesDetailOnce(t *testing.T) {
	src := newFakeSource()
	s := New(src, nil)
	id := s.Current().ID

	run(s, s.Expand())
	if !s.Expanded() || s.Detail() == nil {
		t.Fatal("expected expanded card with detail")
	}

	run(s, s.Expand())
	if s.Expanded() {
		t.Fatal("second toggle should collapse")
	}
	run(s, s.Expand())
	run(s, s.Expand())
	run(s, s.Expand())

	if src.calls[id] != 1 {
		t.Errorf("detail fetched %d times, want 1", src.calls[id])
	}
	if s.Detail() == nil || s.Detail().Summary != "About "+s.Current().Name {
		t.Errorf("cached detail lost: %+v", s.Detail())
	}
}

func TestExpand_NoRefetchWhileInFlight(t *testing.T) {
	src := newFakeSource()
	s := New(src, nil)

	pending := s.Expand()
	if pending == nil {
		t.Fatal("expected a fetch")
	}
	if cmd := s.Expand(); cmd != nil {
		t.Error("collapse issued a fetch")
	}
	if cmd := s.Expand(); cmd != nil {
		t.Error("re-expansion during a fetch issued another fetch")
	}
	run(s, pending)

	if s.Detail() == nil {
		t.Error("in-flight result not stored")
	}
	if src.calls[s.Current().ID] != 1 {
		t.Errorf("detail fetched %d times", src.calls[s.Current().ID])
	}
}

func TestExpand_CardsAreIndependent(t *testing.T) {
	src := newFakeSource()
	s := New(src, nil)
	first := s.Current().ID

	run(s, s.Expand())
	s.moveCursor(1)
	second := s.Current().ID
	if s.Expanded() {
		t.Error("expanding one card expanded another")
	}
	run(s, s.Expand())

	if src.calls[first] != 1 || src.calls[second] != 1 {
		t.Errorf("calls = %v", src.calls)
	}
}

func TestExpand_FreshMenuHasFreshCache(t *testing.T) {
	src := newFakeSource()
	first := New(src, nil)
	run(first, first.Expand())

	s := New(src, nil)
	run(s, s.Expand())
	if src.calls[s.Current().ID] != 2 {
		t.Errorf("expected each menu instance to fetch, got %d", src.calls[s.Current().ID])
	}
}

func TestDetailForUnknownCardIgnored(t *testing.T) {
	s := New(newFakeSource(), nil)
	s.Update(detailMsg{cardID: uuid.New(), detail: &generation.Detail{Summary: "x"}})
	for _, r := range s.rows {
		if r.card != nil && r.card.slot.state != slotEmpty {
			t.Fatalf("%s slot changed", r.card.technique.ID)
		}
	}
}

func TestExpand_FailureAndRetry(t *testing.T) {
	src := newFakeSource()
	src.err = errors.New("unavailable")
	s := New(src, nil)

	run(s, s.Expand())
	if s.Detail() != nil {
		t.Fatal("expected no detail")
	}
	if !strings.Contains(s.View(120, 60), "Press r to retry") {
		t.Error("expected retry prompt")
	}

	// Collapsing and expanding again does not refetch a failed slot.
	run(s, s.Expand())
	run(s, s.Expand())
	if src.calls[s.Current().ID] != 1 {
		t.Fatalf("calls = %d", src.calls[s.Current().ID])
	}

	src.err = nil
	_, cmd := s.Update(key('r'))
	run(s, cmd)
	if s.Detail() == nil {
		t.Error("retry did not load detail")
	}
}

func TestSelect_IndependentOfExpansion(t *testing.T) {
	s := New(newFakeSource(), nil)
	for _, expand := range []bool{false, true} {
		if expand {
			run(s, s.Expand())
		}
		_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd == nil {
			t.Fatal("enter produced no command")
		}
		msg, ok := cmd().(session.SelectMsg)
		if !ok {
			t.Fatalf("expected SelectMsg")
		}
		if msg.Technique.ID != s.Current().ID {
			t.Errorf("selected %s, want %s", msg.Technique.ID, s.Current().ID)
		}
	}
}

func TestToggleMode(t *testing.T) {
	c := session.NewController()
	s := New(newFakeSource(), c)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	msg, ok := cmd().(session.SetModeMsg)
	if !ok || msg.Mode != session.ModeTutorial {
		t.Fatalf("expected SetModeMsg tutorial, got %#v", msg)
	}

	c.Apply(msg)
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if msg := cmd().(session.SetModeMsg); msg.Mode != session.ModePractice {
		t.Errorf("expected toggle back to practice, got %s", msg.Mode)
	}
}

func TestView_KeepsCursorVisible(t *testing.T) {
	s := New(newFakeSource(), nil)
	for range len(s.rows) {
		s.moveCursor(1)
	}
	view := s.View(100, 12)
	if !strings.Contains(view, s.Current().Name) {
		t.Errorf("cursor card %q not visible:\n%s", s.Current().Name, view)
	}
}
