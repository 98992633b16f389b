// Package app wires the session controller to the screens.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vedic/internal/generation"
	"github.com/abhisek/vedic/internal/router"
	"github.com/abhisek/vedic/internal/screen"
	"github.com/abhisek/vedic/internal/screens/menu"
	"github.com/abhisek/vedic/internal/screens/practice"
	"github.com/abhisek/vedic/internal/screens/tutorial"
	"github.com/abhisek/vedic/internal/session"
	"github.com/abhisek/vedic/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	controller *session.Controller
	source     generation.Source
	router     *router.Router
	logger     *slog.Logger
	width      int
	height     int
}

// newAppModel creates a new AppModel showing the technique selector.
func newAppModel(source generation.Source, logger *slog.Logger) AppModel {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	controller := session.NewController()
	return AppModel{
		controller: controller,
		source:     source,
		router:     router.New(menu.New(source, controller)),
		logger:     logger.With("component", "app"),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.controller.State().View == session.ViewSession {
				return m, session.Send(session.BackMsg{})
			}
			return m, nil
		}
	}

	before := m.controller.State()
	if m.controller.Apply(msg) {
		return m, m.reconcile(before, m.controller.State())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// reconcile updates the screen stack after a session transition.
func (m AppModel) reconcile(before, after session.State) tea.Cmd {
	if after.Score != before.Score || after.Streak != before.Streak {
		m.logger.Debug("score updated", "score", after.Score, "streak", after.Streak)
	}

	switch {
	case after.View == session.ViewMenu && before.View != session.ViewMenu:
		m.logger.Info("back to menu", "score", after.Score, "streak", after.Streak)
		return m.router.Reset(menu.New(m.source, m.controller))

	case after.View == session.ViewSession && before.View != session.ViewSession:
		m.logger.Info("session started", "technique", after.Selected.ID, "mode", string(after.Mode))
		return m.router.Push(m.sessionScreen(after))

	case after.View == session.ViewSession && after.Mode != before.Mode:
		m.logger.Info("mode switched", "technique", after.Selected.ID, "mode", string(after.Mode))
		return m.router.Replace(m.sessionScreen(after))
	}
	return nil
}

func (m AppModel) sessionScreen(st session.State) screen.Screen {
	if st.Mode == session.ModeTutorial {
		return tutorial.New(m.source, *st.Selected)
	}
	return practice.New(m.source, m.controller, *st.Selected)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	st := m.controller.State()
	header := layout.RenderHeader(title, st.Score, st.Streak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Options holds the dependencies the TUI runs with.
type Options struct {
	// Source produces puzzles, tutorials and technique details.
	Source generation.Source

	// Logger receives session transitions. Nil discards them.
	Logger *slog.Logger
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts.Source, opts.Logger))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
