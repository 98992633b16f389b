package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vedic/internal/catalog"
)

func technique(t *testing.T, id string) catalog.Technique {
	t.Helper()
	tech, ok := catalog.Lookup(id)
	require.True(t, ok, "technique %q", id)
	return tech
}

func assertSelectionMatchesView(t *testing.T, c *Controller) {
	t.Helper()
	s := c.State()
	assert.Equal(t, s.View == ViewSession, s.Selected != nil,
		"view %s with selection %v", s.View, s.Selected)
}

func TestNewController_Defaults(t *testing.T) {
	c := NewController()
	s := c.State()

	assert.Equal(t, ViewMenu, s.View)
	assert.Equal(t, ModePractice, s.Mode)
	assert.Nil(t, s.Selected)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Streak)
}

func TestSolved_ScoreLaw(t *testing.T) {
	c := NewController()
	for streak := 0; streak < 6; streak++ {
		before := c.State()
		require.Equal(t, streak, before.Streak)

		points := c.Solved()

		after := c.State()
		assert.Equal(t, 10+2*streak, points)
		assert.Equal(t, before.Score+10+2*before.Streak, after.Score)
		assert.Equal(t, before.Streak+1, after.Streak)
	}
}

func TestFailed_ResetsStreak(t *testing.T) {
	for _, prior := range []int{0, 1, 5} {
		c := NewController()
		for range prior {
			c.Solved()
		}
		score := c.State().Score

		c.Failed()

		assert.Zero(t, c.State().Streak)
		assert.Equal(t, score, c.State().Score, "failure must not change score")
	}
}

func TestSelectAndBack(t *testing.T) {
	c := NewController()
	urdhva := technique(t, "urdhva")

	require.True(t, c.SelectTechnique(urdhva))
	assertSelectionMatchesView(t, c)
	assert.Equal(t, "urdhva", c.State().Selected.ID)

	assert.False(t, c.SelectTechnique(technique(t, "nikhilam")), "select while in session")
	assert.Equal(t, "urdhva", c.State().Selected.ID)

	c.BackToMenu()
	assertSelectionMatchesView(t, c)
	assert.Equal(t, ViewMenu, c.State().View)

	c.BackToMenu()
	assertSelectionMatchesView(t, c)
}

func TestStateReturnsCopy(t *testing.T) {
	c := NewController()
	c.SelectTechnique(technique(t, "urdhva"))

	s := c.State()
	s.Selected.Name = "changed"
	s.Score = 99

	assert.NotEqual(t, "changed", c.State().Selected.Name)
	assert.Zero(t, c.State().Score)
}

func TestModes(t *testing.T) {
	c := NewController()

	assert.False(t, c.SetMode(ModePractice), "already practice")
	assert.True(t, c.SetMode(ModeTutorial))
	assert.False(t, c.SetMode(Mode("quiz")))
	assert.Equal(t, ModeTutorial, c.State().Mode)

	assert.False(t, c.StartPracticeFromTutorial(), "not in a session")

	c.SelectTechnique(technique(t, "nikhilam"))
	require.True(t, c.StartPracticeFromTutorial())
	s := c.State()
	assert.Equal(t, ModePractice, s.Mode)
	assert.Equal(t, ViewSession, s.View)
	assert.Equal(t, "nikhilam", s.Selected.ID)

	assert.Equal(t, ModeTutorial, ModePractice.Toggle())
	assert.Equal(t, ModePractice, ModeTutorial.Toggle())
}

func TestApply(t *testing.T) {
	c := NewController()
	urdhva := technique(t, "urdhva")

	// Select urdhva, solve one puzzle.
	for _, msg := range []any{SelectMsg{Technique: urdhva}, SolvedMsg{}} {
		assert.True(t, c.Apply(msg))
	}
	s := c.State()
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 1, s.Streak)

	// Two more solves take the streak to 3, then one more awards 16.
	c.Apply(SolvedMsg{})
	c.Apply(SolvedMsg{})
	require.Equal(t, 3, c.State().Streak)
	score := c.State().Score
	c.Apply(SolvedMsg{})
	assert.Equal(t, score+16, c.State().Score)
	assert.Equal(t, 4, c.State().Streak)

	c.Apply(FailedMsg{})
	assert.Zero(t, c.State().Streak)

	c.Apply(SetModeMsg{Mode: ModeTutorial})
	assert.Equal(t, ModeTutorial, c.State().Mode)
	c.Apply(StartPracticeMsg{})
	assert.Equal(t, ModePractice, c.State().Mode)

	c.Apply(BackMsg{})
	assertSelectionMatchesView(t, c)
	assert.Equal(t, ViewMenu, c.State().View)

	assert.False(t, c.Apply("not a session message"))
}

func TestInvariantUnderRandomSequence(t *testing.T) {
	c := NewController()
	msgs := []any{
		SelectMsg{Technique: technique(t, "urdhva")},
		SolvedMsg{}, BackMsg{}, BackMsg{},
		SetModeMsg{Mode: ModeTutorial},
		SelectMsg{Technique: technique(t, "paravartya")},
		SelectMsg{Technique: technique(t, "nikhilam")},
		StartPracticeMsg{}, FailedMsg{}, SolvedMsg{}, BackMsg{},
	}
	lastScore := 0
	for _, msg := range msgs {
		c.Apply(msg)
		assertSelectionMatchesView(t, c)
		assert.GreaterOrEqual(t, c.State().Score, lastScore)
		lastScore = c.State().Score
	}
}
