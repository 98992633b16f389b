package tutorial

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vedic/internal/ui/components"
	"github.com/abhisek/vedic/internal/ui/layout"
	"github.com/abhisek/vedic/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.loader.View())
	}
	if s.tutorial == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.renderFailed())
	}

	contentWidth := min(width-4, 80)
	footer := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).
		Render(components.NewButton("P", "Try a Puzzle Now", true).View())

	bodyHeight := height - lipgloss.Height(footer) - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	s.viewport.SetWidth(contentWidth)
	s.viewport.SetHeight(bodyHeight)
	s.viewport.SetContent(s.renderBody(contentWidth, layout.IsCompactHeight(height)))
	if s.follow {
		s.viewport.GotoBottom()
		s.follow = false
	}

	page := s.viewport.View() + "\n" + footer
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, page)
}

func (s *Screen) renderFailed() string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Render("Failed to load tutorial."))
	if s.err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(s.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(components.ButtonRow(
		components.NewButton("R", "Try Again", true),
		components.NewButton("P", "Try a Puzzle Now", false),
	))
	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}

func (s *Screen) renderBody(width int, compact bool) string {
	tut := s.tutorial
	accent := theme.AccentOr(s.technique.Accent, theme.Primary)
	text := theme.Body.Width(width)
	gap := "\n\n"
	if compact {
		gap = "\n"
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).Render(tut.Title))
	b.WriteString(gap)

	b.WriteString(theme.Heading.Render("The Concept"))
	b.WriteString("\n")
	b.WriteString(text.Render(tut.Concept))
	b.WriteString(gap)

	problem := lipgloss.NewStyle().Foreground(theme.BgDark).Background(accent).Bold(true).
		Padding(0, 1).Render(tut.ExampleProblem)
	b.WriteString(theme.Heading.Render("Example Walkthrough") + "  " + problem)
	b.WriteString("\n")
	b.WriteString(components.NewStepProgress(s.position, len(tut.Steps), width).View())
	b.WriteString(gap)

	current := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Primary).Bold(true)
	past := lipgloss.NewStyle().Foreground(theme.TextDim).Background(theme.Border)
	stepText := theme.Body.Width(width - 6)
	for i := 0; i <= s.position && i < len(tut.Steps); i++ {
		num := past
		if i == s.position {
			num = current
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			num.Render(fmt.Sprintf(" %d ", i+1)), " ", stepText.Render(tut.Steps[i])))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if !s.Complete() {
		b.WriteString(components.NewButton("Enter", "Next Step →", true).View())
		return b.String()
	}

	b.WriteString(theme.Correct.Render("✨ Walkthrough Complete!"))
	b.WriteString(gap)
	why := theme.Heading.Render("WHY IT WORKS") + "\n" + theme.Body.Render(tut.WhyItWorks)
	b.WriteString(theme.Panel.BorderForeground(theme.Secondary).Width(width - 2).Render(why))
	return b.String()
}
