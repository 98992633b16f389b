// Package layout renders the frame shared by every screen: a header bar
// with score and streak, the screen body, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vedic/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30

	// StreakHot is the streak above which the header highlights the streak.
	StreakHot = 2
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf(
			"The terminal is too small.\n\nResize to at least %d × %d\n(currently %d × %d)",
			MinWidth, MinHeight, width, height,
		))
}

// bar is the bordered strip used for the header and footer.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// spread places left, center and right across inner columns, keeping
// center in the middle when there is room and at least one space between
// neighbours.
func spread(left, center, right string, inner int) string {
	l, c, r := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gapL := max((inner-c)/2-l, 1)
	gapR := max(inner-l-gapL-c-r, 1)
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

// RenderHeader renders the brand, the active screen title, the streak and
// the score. Compact widths drop the title.
func RenderHeader(title string, score, streak int, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Vedic Wisdom")

	streakStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if streak > StreakHot {
		streakStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	}
	stats := streakStyle.Render(fmt.Sprintf("▲ %d streak", streak)) + "   " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("◆ %d", score))

	if IsCompactWidth(width) {
		title = ""
	}
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	return bar(width).Render(spread(brand, center, stats, max(width-4, 0)))
}

// RenderFooter renders the key hints in a single row.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, giving content whatever
// height remains.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}
