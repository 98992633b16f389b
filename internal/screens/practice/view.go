package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vedic/internal/ui/components"
	"github.com/abhisek/vedic/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	var body string
	switch s.phase {
	case PhaseLoading:
		body = s.loader.View()
	case PhaseFailed:
		body = s.renderFailed()
	default:
		body = s.renderPuzzle(width)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *Screen) renderFailed() string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Render("Failed to load puzzle."))
	if s.err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(s.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(components.NewButton("R", "Try Again", true).View())
	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}

func (s *Screen) renderPuzzle(width int) string {
	contentWidth := min(width-4, 72)
	accent := theme.AccentOr(s.technique.Accent, theme.Primary)
	center := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Render(lipgloss.NewStyle().Foreground(accent).Bold(true).Render(s.technique.Name)))
	b.WriteString("\n")
	b.WriteString(center.Render(theme.Hint.Render("Solve using Vedic techniques")))
	b.WriteString("\n\n")

	b.WriteString(center.Render(theme.Heading.Render("PROBLEM")))
	b.WriteString("\n\n")
	b.WriteString(center.Render(theme.Title.Render(s.puzzle.Question)))
	b.WriteString("\n\n")
	b.WriteString(center.Render(s.input.View()))
	b.WriteString("\n\n")

	if s.phase.answering() {
		hintLabel := "Need a Hint?"
		if s.showHint {
			hintLabel = "Hide Hint"
		}
		b.WriteString(center.Render(components.ButtonRow(
			components.NewButton("Enter", "Check", true),
			components.NewButton("Ctrl+R", "Reset", false),
			components.NewButton("Ctrl+G", "Show Me", false),
			components.NewButton("?", hintLabel, false),
		)))
		b.WriteString("\n")
	}

	if s.showHint && s.phase.answering() {
		hint := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Hint: ") +
			theme.Body.Render(s.puzzle.Hint)
		b.WriteString("\n")
		b.WriteString(center.Render(theme.Panel.BorderForeground(theme.Accent).Width(contentWidth - 4).Render(hint)))
		b.WriteString("\n")
	}

	if s.phase == PhaseIncorrect {
		b.WriteString("\n")
		b.WriteString(center.Render(theme.Incorrect.Render("Not quite. Try applying the sutra steps again!")))
		b.WriteString("\n")
	}

	if s.phase.finished() {
		b.WriteString(s.renderSolution(contentWidth))
	}

	return b.String()
}

func (s *Screen) renderSolution(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder

	b.WriteString("\n")
	if s.phase == PhaseCorrect {
		banner := "✓ Excellent!"
		if s.session != nil {
			banner += fmt.Sprintf("  Streak %d", s.session.State().Streak)
		}
		b.WriteString(center.Render(theme.Correct.Render(banner)))
	} else {
		b.WriteString(center.Render(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Learning Opportunity")))
	}
	b.WriteString("\n\n")

	b.WriteString(center.Render(theme.Heading.Render("The Vedic Method:")))
	b.WriteString("\n")
	b.WriteString(center.Render(theme.Hint.Render(s.puzzle.Explanation)))
	b.WriteString("\n\n")

	numStyle := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Primary).Bold(true)
	stepStyle := theme.Body.Width(width - 6)
	for i, step := range s.puzzle.Steps {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			numStyle.Render(fmt.Sprintf(" %d ", i+1)), " ", stepStyle.Render(step))
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center.Render(components.NewButton("Enter", "Next Puzzle →", true).View()))
	return b.String()
}
