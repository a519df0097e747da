// Package welcome is the landing screen shown on launch.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/resonancehq/climatecheck/internal/assessment"
	"github.com/resonancehq/climatecheck/internal/plan"
	"github.com/resonancehq/climatecheck/internal/router"
	"github.com/resonancehq/climatecheck/internal/screen"
	"github.com/resonancehq/climatecheck/internal/screens/profile"
	"github.com/resonancehq/climatecheck/internal/ui/components"
	"github.com/resonancehq/climatecheck/internal/ui/layout"
	"github.com/resonancehq/climatecheck/internal/ui/theme"
)

// Screen is the launch splash. Enter starts the intake form.
type Screen struct {
	state *assessment.State
	plans *plan.Service
	begin components.Button
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

func New(state *assessment.State, plans *plan.Service) *Screen {
	s := &Screen{state: state, plans: plans}
	s.begin = components.NewButton("Begin Assessment", true, func() tea.Cmd {
		next := profile.New(state, plans)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	})
	return s
}

func (s *Screen) Title() string {
	return "Welcome"
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.begin, cmd = s.begin.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	bank := s.state.Bank()

	var b strings.Builder

	b.WriteString(theme.Title.Render("Is Your Company Ready for Climate Tech?"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(
		"Answer a short questionnaire about your company's strategy,\n" +
			"resources, and operations to get a readiness score and a\n" +
			"personalized climate technology action plan."))
	b.WriteString("\n\n")

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	for _, section := range bank.Sections {
		b.WriteString(dim.Render("  • "+section.Title) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(s.begin.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Takes about five minutes."))

	content := lipgloss.NewStyle().Width(min(width-4, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
