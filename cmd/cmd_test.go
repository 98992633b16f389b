package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vedic/internal/catalog"
	"github.com/abhisek/vedic/internal/generation"
	"github.com/abhisek/vedic/internal/store"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    catalog.Difficulty
		wantErr bool
	}{
		{"beginner", catalog.Beginner, false},
		{"Intermediate", catalog.Intermediate, false},
		{" ADVANCED ", catalog.Advanced, false},
		{"expert", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDifficulty(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	printCatalog(&buf, catalog.AllDifficulties())
	out := buf.String()

	for _, tech := range catalog.All() {
		assert.Contains(t, out, tech.Name)
	}
	assert.Less(t, strings.Index(out, "BEGINNER"), strings.Index(out, "INTERMEDIATE"))
	assert.Less(t, strings.Index(out, "INTERMEDIATE"), strings.Index(out, "ADVANCED"))

	buf.Reset()
	printCatalog(&buf, []catalog.Difficulty{catalog.Advanced})
	assert.NotContains(t, buf.String(), "BEGINNER")
	for _, tech := range catalog.ByDifficulty(catalog.Advanced) {
		assert.Contains(t, buf.String(), tech.ID)
	}
}

func TestAskPuzzle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"correct", "1225\n", "Correct!"},
		{"wrong", "1200\n", "Not quite."},
		{"skipped", "\n", "(skipped) Answer: 1225"},
		{"closed input", "", "(skipped) Answer: 1225"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := askPuzzle(&out, strings.NewReader(tt.input), generation.FallbackPuzzle())
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
			assert.Contains(t, out.String(), "35 × 35")
			assert.Contains(t, out.String(), "  1. ")
		})
	}
}

func TestPrintEventList(t *testing.T) {
	var buf bytes.Buffer
	printEventList(&buf, nil)
	assert.Equal(t, "No LLM events found.\n", buf.String())

	buf.Reset()
	printEventList(&buf, []store.LLMEvent{
		{ID: 2, CreatedAt: time.Now(), LLMRequestEventData: store.LLMRequestEventData{
			Purpose: "detail", Model: "gemini-2.5-flash", Success: false, ErrorKind: "rate_limit"}},
		{ID: 1, CreatedAt: time.Now(), LLMRequestEventData: store.LLMRequestEventData{
			Purpose: "puzzle", Model: "gemini-2.5-flash", InputTokens: 100, OutputTokens: 50, Success: true}},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "failed: rate_limit")
	assert.Contains(t, lines[3], "puzzle")
	assert.True(t, strings.HasSuffix(lines[3], "ok"))
}

func TestPrintEvent(t *testing.T) {
	var buf bytes.Buffer
	printEvent(&buf, &store.LLMEvent{
		ID:        7,
		CreatedAt: time.Now(),
		LLMRequestEventData: store.LLMRequestEventData{
			Purpose:      "tutorial",
			Success:      false,
			ErrorKind:    "invalid_response",
			ErrorMessage: "missing field",
			RequestBody:  "[user]\nTeach me\n\n",
		},
	})
	out := buf.String()
	assert.Contains(t, out, "ID:        7")
	assert.Contains(t, out, "failed (invalid_response) missing field")
	assert.Contains(t, out, "REQUEST\n")
	assert.Contains(t, out, "Teach me")
	assert.Contains(t, out, "(not captured)")
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printPurposeUsage(&buf, []store.PurposeUsage{
		{Purpose: "puzzle", Calls: 3, Failures: 1, InputTokens: 300, OutputTokens: 150, AvgLatencyMs: 800},
		{Purpose: "tutorial", Calls: 1, InputTokens: 100, OutputTokens: 400, AvgLatencyMs: 1500},
	})
	last := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"TOTAL", "4", "1", "400", "550", "950"}, strings.Fields(last[len(last)-1]))

	buf.Reset()
	printModelCost(&buf, []store.ModelUsage{
		{Model: "gemini-2.5-flash", Calls: 3, InputTokens: 300, OutputTokens: 150},
		{Model: "homegrown", Calls: 1},
	})
	assert.Contains(t, buf.String(), "TOTAL (partial)")
	assert.Contains(t, buf.String(), "Pricing unavailable for: homegrown")
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.00123))
	assert.Equal(t, "$1.50", formatCost(1.5))
}
