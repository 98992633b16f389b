package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.DB())

	var name string
	err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, llmRequestEventsTable).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, llmRequestEventsTable, name)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "again.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendLLMRequest(context.Background(), LLMRequestEventData{Purpose: "puzzle", Success: true}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	events, err := s.EventRepo().QueryLLMEvents(context.Background(), QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got), tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestWithPragmas(t *testing.T) {
	assert.Equal(t,
		"file:/tmp/x.db?_pragma=journal_mode%28WAL%29&_pragma=busy_timeout%285000%29&_pragma=foreign_keys%281%29&_pragma=synchronous%28NORMAL%29",
		withPragmas("/tmp/x.db"))

	got := withPragmas("file:/tmp/x.db?mode=ro")
	assert.Contains(t, got, "mode=ro")
	assert.Contains(t, got, "_pragma=")
}

func seedEvents(t *testing.T, repo EventRepo) {
	t.Helper()
	ctx := context.Background()
	for _, ev := range []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "puzzle", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true,
			RequestBody: "[user]\nGenerate a puzzle", ResponseBody: `{"question":"What is 35 × 35?"}`},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "puzzle", LatencyMs: 200, Success: false,
			ErrorKind: "rate_limit", ErrorMessage: "rate limited"},
		{Provider: "gemini", Model: "gemini-2.5-pro", Purpose: "tutorial", InputTokens: 300, OutputTokens: 400, LatencyMs: 1500, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, ev))
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedEvents(t, repo)
	ctx := context.Background()

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "tutorial", events[0].Purpose, "newest first")
	assert.Greater(t, events[0].ID, events[1].ID)
	assert.WithinDuration(t, time.Now(), events[0].CreatedAt, time.Minute)

	last := events[2]
	assert.Equal(t, "gemini", last.Provider)
	assert.Equal(t, 100, last.InputTokens)
	assert.True(t, last.Success)
	assert.Equal(t, `{"question":"What is 35 × 35?"}`, last.ResponseBody)
}

func TestQueryLLMEvents_Filters(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedEvents(t, repo)
	ctx := context.Background()

	tests := []struct {
		name string
		opts QueryOpts
		want int
	}{
		{"limit", QueryOpts{Limit: 2}, 2},
		{"purpose", QueryOpts{Purpose: "puzzle"}, 2},
		{"failed only", QueryOpts{FailedOnly: true}, 1},
		{"purpose and failed", QueryOpts{Purpose: "tutorial", FailedOnly: true}, 0},
		{"after", QueryOpts{After: 1}, 2},
		{"before", QueryOpts{Before: 2}, 1},
		{"from future", QueryOpts{From: time.Now().Add(time.Hour)}, 0},
		{"to past", QueryOpts{To: time.Now().Add(-time.Hour)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := repo.QueryLLMEvents(ctx, tt.opts)
			require.NoError(t, err)
			assert.Len(t, events, tt.want)
		})
	}
}

func TestGetLLMEvent(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedEvents(t, repo)
	ctx := context.Background()

	ev, err := repo.GetLLMEvent(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ev.Success)
	assert.Equal(t, "rate_limit", ev.ErrorKind)
	assert.Equal(t, "rate limited", ev.ErrorMessage)

	_, err = repo.GetLLMEvent(ctx, 99)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLLMUsageByPurpose(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedEvents(t, repo)

	usage, err := repo.LLMUsageByPurpose(context.Background())
	require.NoError(t, err)
	require.Len(t, usage, 2)

	puzzle := usage[0]
	assert.Equal(t, "puzzle", puzzle.Purpose)
	assert.Equal(t, 2, puzzle.Calls)
	assert.Equal(t, 1, puzzle.Failures)
	assert.Equal(t, int64(100), puzzle.InputTokens)
	assert.InDelta(t, 500.0, puzzle.AvgLatencyMs, 0.001)

	assert.Equal(t, "tutorial", usage[1].Purpose)
	assert.Equal(t, 0, usage[1].Failures)
}

func TestLLMUsageByModel(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedEvents(t, repo)

	usage, err := repo.LLMUsageByModel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ModelUsage{
		{Model: "gemini-2.5-flash", Calls: 2, InputTokens: 100, OutputTokens: 50},
		{Model: "gemini-2.5-pro", Calls: 1, InputTokens: 300, OutputTokens: 400},
	}, usage)
}

func TestUsageEmpty(t *testing.T) {
	repo := openTestStore(t).EventRepo()

	byPurpose, err := repo.LLMUsageByPurpose(context.Background())
	require.NoError(t, err)
	assert.Empty(t, byPurpose)
}

func TestPurgeLLMEvents(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	now = func() time.Time { return old }
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "detail", Success: true}))
	now = time.Now
	t.Cleanup(func() { now = time.Now })
	seedEvents(t, repo)

	n, err := repo.PurgeLLMEvents(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "detail"})
	require.NoError(t, err)
	assert.Empty(t, events)

	n, err = repo.PurgeLLMEvents(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("VEDIC_DB wins", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "nested", "custom.db")
		t.Setenv("VEDIC_DB", p)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, p, got)
		_, err = os.Stat(filepath.Dir(p))
		assert.NoError(t, err)
	})

	t.Run("XDG data home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("VEDIC_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "vedic", "vedic.db"), got)
	})
}
