package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vedic/internal/ui/theme"
)

// Loader is a spinner with a caption, shown while content is generated.
type Loader struct {
	Spinner spinner.Model
	Caption string
}

// NewLoader creates a loader with the given caption.
func NewLoader(caption string) Loader {
	return Loader{
		Spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
		Caption: caption,
	}
}

// Tick starts the spinner animation.
func (l Loader) Tick() tea.Cmd {
	return l.Spinner.Tick
}

// Update advances the spinner.
func (l Loader) Update(msg tea.Msg) (Loader, tea.Cmd) {
	var cmd tea.Cmd
	l.Spinner, cmd = l.Spinner.Update(msg)
	return l, cmd
}

// View renders the spinner and caption.
func (l Loader) View() string {
	return l.Spinner.View() + " " + theme.Hint.Render(l.Caption)
}
