package tutorial

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/vedic/internal/catalog"
	"github.com/abhisek/vedic/internal/generation"
	"github.com/abhisek/vedic/internal/llm"
	"github.com/abhisek/vedic/internal/session"
)

type fakeSource struct {
	tutorial *generation.Tutorial
	err      error
	calls    int
}

func (f *fakeSource) Puzzle(context.Context, catalog.Technique) (*generation.Puzzle, error) {
	return nil, errors.New("not used")
}

func (f *fakeSource) Tutorial(context.Context, catalog.Technique) (*generation.Tutorial, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	t := *f.tutorial
	return &t, nil
}

func (f *fakeSource) Detail(context.Context, catalog.Technique) (*generation.Detail, error) {
	return nil, errors.New("not used")
}

func nikhilam(t *testing.T) catalog.Technique {
	t.Helper()
	tech, ok := catalog.Lookup("nikhilam")
	if !ok {
		t.Fatal("nikhilam missing from catalog")
	}
	return tech
}

func testTutorial(steps ...string) *generation.Tutorial {
	return &generation.Tutorial{
		Title:          "Near a base",
		Concept:        "Work with the distance from 100.",
		ExampleProblem: "97 × 96",
		Steps:          steps,
		WhyItWorks:     "(100-a)(100-b) = 100(100-a-b) + ab",
	}
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func load(t *testing.T, s *Screen) {
	t.Helper()
	for _, msg := range drain(s.Init()) {
		if tm, ok := msg.(tutorialMsg); ok {
			s.Update(tm)
		}
	}
	if s.Loading() {
		t.Fatal("tutorial still loading")
	}
}

func TestLoad_StartsAtFirstStep(t *testing.T) {
	s := New(&fakeSource{tutorial: testTutorial("a", "b", "c")}, nikhilam(t))
	load(t, s)

	if s.Tutorial() == nil {
		t.Fatal("expected tutorial")
	}
	if s.Position() != 0 {
		t.Errorf("position = %d, want 0", s.Position())
	}
	if s.Complete() {
		t.Error("complete at first of three steps")
	}
}

func TestAdvance_IdempotentAtEnd(t *testing.T) {
	s := New(&fakeSource{tutorial: testTutorial("a", "b", "c")}, nikhilam(t))
	load(t, s)

	s.Advance()
	s.Advance()
	if s.Position() != 2 || !s.Complete() {
		t.Fatalf("position = %d complete = %v", s.Position(), s.Complete())
	}

	for range 3 {
		s.Advance()
	}
	if s.Position() != 2 {
		t.Errorf("advance past the end moved position to %d", s.Position())
	}
}

func TestAdvance_Keys(t *testing.T) {
	s := New(&fakeSource{tutorial: testTutorial("a", "b", "c", "d")}, nikhilam(t))
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})

	if s.Position() != 3 {
		t.Errorf("position = %d, want 3", s.Position())
	}
}

func TestEmptySteps_Complete(t *testing.T) {
	s := New(&fakeSource{tutorial: testTutorial()}, nikhilam(t))
	load(t, s)

	if !s.Complete() {
		t.Error("tutorial without steps should be complete")
	}
	s.Advance()
	if s.Position() != 0 {
		t.Errorf("position = %d", s.Position())
	}
	if !strings.Contains(s.View(100, 40), "Walkthrough Complete") {
		t.Error("expected completion banner")
	}
}

func TestWhyItWorks_OnlyAtEnd(t *testing.T) {
	s := New(&fakeSource{tutorial: testTutorial("a", "b")}, nikhilam(t))
	load(t, s)

	if strings.Contains(s.View(100, 60), "WHY IT WORKS") {
		t.Error("why-it-works shown before the last step")
	}
	s.Advance()
	view := s.View(100, 60)
	if !strings.Contains(view, "WHY IT WORKS") {
		t.Error("why-it-works missing at the last step")
	}
	if strings.Contains(view, "Next Step") {
		t.Error("next step offered at the last step")
	}
}

func TestStartPractice_AnyTime(t *testing.T) {
	s := New(&fakeSource{tutorial: testTutorial("a", "b", "c")}, nikhilam(t))
	load(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	msgs := drain(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %v", msgs)
	}
	if _, ok := msgs[0].(session.StartPracticeMsg); !ok {
		t.Errorf("expected StartPracticeMsg, got %T", msgs[0])
	}
}

func TestFallbackTutorial(t *testing.T) {
	src := generation.WithPolicy(
		generation.NewClient(llm.Unavailable(nil), generation.DefaultConfig()),
		generation.PolicyFallback, nil)
	s := New(src, nikhilam(t))
	load(t, s)

	if s.Tutorial().ExampleProblem != "35 × 35" {
		t.Errorf("expected fallback tutorial, got %+v", s.Tutorial())
	}
}

func TestFailure_Retry(t *testing.T) {
	src := &fakeSource{err: errors.New("rate limited")}
	s := New(src, nikhilam(t))
	load(t, s)

	if s.Tutorial() != nil {
		t.Fatal("expected no tutorial")
	}
	if !strings.Contains(s.View(100, 40), "Failed to load tutorial.") {
		t.Error("expected failure message")
	}

	src.err = nil
	src.tutorial = testTutorial("a")
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	for _, msg := range drain(cmd) {
		s.Update(msg)
	}
	if s.Tutorial() == nil || src.calls != 2 {
		t.Errorf("retry failed: tutorial %v calls %d", s.Tutorial(), src.calls)
	}
}

func TestStaleTutorialIgnored(t *testing.T) {
	s := New(&fakeSource{tutorial: testTutorial("a")}, nikhilam(t))
	s.Init()

	s.Update(tutorialMsg{screenID: uuid.New(), tutorial: testTutorial("x")})
	if !s.Loading() {
		t.Error("message for another screen ended loading")
	}
}
