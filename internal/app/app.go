package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/resonancehq/climatecheck/internal/assessment"
	"github.com/resonancehq/climatecheck/internal/plan"
	"github.com/resonancehq/climatecheck/internal/router"
	"github.com/resonancehq/climatecheck/internal/screen"
	"github.com/resonancehq/climatecheck/internal/screens/profile"
	"github.com/resonancehq/climatecheck/internal/screens/welcome"
	"github.com/resonancehq/climatecheck/internal/ui/layout"
)

// Options carries the wired services the TUI runs on.
type Options struct {
	State *assessment.State
	Plans *plan.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		opts:   opts,
		router: router.New(welcome.New(opts.State, opts.Plans)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.RestartRequestedMsg:
		m.opts.State.Reset()
		next := profile.New(m.opts.State, m.opts.Plans)
		return m, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Backing out is only allowed before intake commits the
			// profile; afterwards the flow restarts via the results
			// menu, never by unwinding onto a live assessment.
			if m.router.Depth() > 1 && m.opts.State.Profile() == nil {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
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
	progress := -1.0
	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if hinter, ok := active.(screen.KeyHintProvider); ok {
			footerHints = hinter.KeyHints()
		}
		// Progress only makes sense once intake is done.
		if m.opts.State.Profile() != nil {
			progress = m.opts.State.Progress()
		}
	}

	header := layout.RenderHeader(title, progress, m.width)
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

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
