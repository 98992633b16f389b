package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vedic/internal/ui/theme"
)

// StepProgress displays how far through a walkthrough the user is.
type StepProgress struct {
	// Current is the zero-based index of the step on screen.
	Current int
	Total   int
	Width   int
}

// NewStepProgress creates a step progress bar.
func NewStepProgress(current, total, width int) StepProgress {
	return StepProgress{Current: current, Total: total, Width: width}
}

// Percent returns the fraction of steps revealed, in [0, 1].
func (p StepProgress) Percent() float64 {
	if p.Total <= 0 {
		return 1
	}
	done := p.Current + 1
	if done > p.Total {
		done = p.Total
	}
	if done < 0 {
		done = 0
	}
	return float64(done) / float64(p.Total)
}

// Label returns the "Step n of m" text.
func (p StepProgress) Label() string {
	if p.Total <= 0 {
		return "No steps"
	}
	n := p.Current + 1
	if n > p.Total {
		n = p.Total
	}
	return fmt.Sprintf("Step %d of %d", n, p.Total)
}

// View renders the progress bar.
func (p StepProgress) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + p.Label())

	barWidth := p.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		label
}
