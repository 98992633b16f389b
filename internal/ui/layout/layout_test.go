package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestSizeThresholds(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))

	assert.True(t, IsCompactWidth(CompactWidthThreshold-1))
	assert.False(t, IsCompactWidth(CompactWidthThreshold))
	assert.True(t, IsCompactHeight(CompactHeightThreshold-1))
}

func TestSpread(t *testing.T) {
	got := spread("L", "C", "R", 21)
	assert.Equal(t, 21, lipgloss.Width(got))
	assert.Equal(t, 10, strings.Index(got, "C"))

	// Crowded rows keep a single space between parts.
	assert.Equal(t, "left center right", spread("left", "center", "right", 5))
}

func TestRenderHeader(t *testing.T) {
	wide := RenderHeader("Tutorial: Yavadunam", 42, 3, 120)
	assert.Contains(t, wide, "Vedic Wisdom")
	assert.Contains(t, wide, "Tutorial: Yavadunam")
	assert.Contains(t, wide, "▲ 3 streak")
	assert.Contains(t, wide, "◆ 42")

	compact := RenderHeader("Tutorial: Yavadunam", 0, 0, 90)
	assert.NotContains(t, compact, "Tutorial")
	assert.Contains(t, compact, "◆ 0")
}

func TestRenderFooter(t *testing.T) {
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Check"}, {Key: "Esc", Description: "Menu"}}, 100)
	assert.Contains(t, footer, "Enter")
	assert.Contains(t, footer, "Menu")
	assert.Equal(t, 3, lipgloss.Height(footer))
}

func TestRenderFrame(t *testing.T) {
	header := RenderHeader("x", 0, 0, 100)
	footer := RenderFooter(nil, 100)
	frame := RenderFrame(header, "body", footer, 100, 30)
	assert.Equal(t, 30, lipgloss.Height(frame))
	assert.Contains(t, frame, "body")
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(60, 20)
	assert.Contains(t, msg, "80 × 24")
	assert.Contains(t, msg, "60 × 20")
}
