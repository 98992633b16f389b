package menu

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vedic/internal/catalog"
	"github.com/abhisek/vedic/internal/session"
	"github.com/abhisek/vedic/internal/ui/layout"
	"github.com/abhisek/vedic/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	intro := s.renderIntro(width)
	listHeight := height - lipgloss.Height(intro)
	if listHeight < 1 {
		return intro
	}

	// Render every row, remembering where the cursor's block sits.
	var lines []string
	cursorStart, cursorEnd := 0, 0
	headerStart := 0
	for i, r := range s.rows {
		var block string
		switch r.kind {
		case rowDifficultyHeader:
			headerStart = len(lines)
			block = renderDifficultyHeader(r.difficulty, width)
		case rowCard:
			block = s.renderCard(r.card, i == s.cursor, width)
		}
		blockLines := strings.Split(block, "\n")
		if i == s.cursor {
			cursorStart = len(lines)
			if i > 0 && s.rows[i-1].kind == rowDifficultyHeader {
				cursorStart = headerStart
			}
			cursorEnd = len(lines) + len(blockLines) - 1
		}
		lines = append(lines, blockLines...)
	}

	s.adjustScroll(cursorStart, cursorEnd, listHeight)

	end := min(s.scrollOffset+listHeight, len(lines))
	visible := lines[min(s.scrollOffset, len(lines)):end]
	return intro + "\n" + strings.Join(visible, "\n")
}

// adjustScroll keeps the lines [start, end] visible, preferring start.
func (s *Screen) adjustScroll(start, end, height int) {
	if end >= s.scrollOffset+height {
		s.scrollOffset = end - height + 1
	}
	if start < s.scrollOffset {
		s.scrollOffset = start
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

func (s *Screen) renderIntro(width int) string {
	tagline := "Select a Vedic technique to begin your training. Learn to calculate with the speed of thought."
	if layout.IsCompactWidth(width) {
		tagline = "Select a Vedic technique to begin your training."
	}

	practice := modeTab("Practice", s.mode() == session.ModePractice)
	tutorial := modeTab("Tutorial", s.mode() == session.ModeTutorial)

	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Width(width).Render(tagline),
		lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(practice+" "+tutorial),
	)
}

func modeTab(label string, active bool) string {
	if active {
		return lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Primary).Bold(true).Padding(0, 1).Render(label)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1).Render(label)
}

func difficultyColor(d catalog.Difficulty) color.Color {
	switch d {
	case catalog.Beginner:
		return theme.Beginner
	case catalog.Intermediate:
		return theme.Intermediate
	case catalog.Advanced:
		return theme.Advanced
	default:
		return theme.TextDim
	}
}

func renderDifficultyHeader(d catalog.Difficulty, width int) string {
	return lipgloss.NewStyle().
		Foreground(difficultyColor(d)).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(string(d)))
}

func (s *Screen) renderCard(c *card, selected bool, width int) string {
	t := c.technique
	accent := theme.AccentOr(t.Accent, theme.Primary)

	marker := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if selected {
		marker = lipgloss.NewStyle().Foreground(accent).Render("▸ ")
		nameStyle = nameStyle.Foreground(accent)
	}

	fold := "+"
	if c.expanded {
		fold = "−"
	}

	title := "  " + marker + nameStyle.Render(t.Name) + "  " +
		lipgloss.NewStyle().Foreground(theme.Accent).Italic(true).Render(`"`+t.Translation+`"`) +
		"  " + theme.Hint.Render(fold)

	textWidth := max(width-8, 20)
	indent := lipgloss.NewStyle().PaddingLeft(6).Width(textWidth + 6)

	lines := []string{title}
	if selected || c.expanded {
		lines = append(lines, indent.Render(theme.Hint.Render(t.Description)))
	}
	if c.expanded {
		lines = append(lines, indent.Render(s.renderDetail(c, textWidth)))
	}
	return strings.Join(lines, "\n")
}

func (s *Screen) renderDetail(c *card, width int) string {
	switch c.slot.state {
	case slotLoading:
		return s.loader.View()
	case slotFailed:
		msg := "Could not load details. Press r to retry."
		return theme.Incorrect.Render(msg)
	case slotReady:
	default:
		return ""
	}

	d := c.slot.detail
	body := theme.Body.Width(width)
	var b strings.Builder
	b.WriteString(body.Render(d.Summary))
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Use cases"))
	b.WriteString("\n")
	for _, u := range d.UseCases {
		b.WriteString(body.Render("• " + u))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Heading.Render("Deep dive"))
	b.WriteString("\n")
	b.WriteString(body.Render(d.DeepDive))
	return theme.Panel.Render(b.String())
}
