// Package results shows the scored assessment outcome: the readiness
// tier, per-section breakdown, the generated action plan, and export
// actions. Plan generation runs in the background; exports stay
// disabled until it resolves.
package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/resonancehq/climatecheck/internal/assessment"
	"github.com/resonancehq/climatecheck/internal/plan"
	"github.com/resonancehq/climatecheck/internal/report"
	"github.com/resonancehq/climatecheck/internal/scoring"
	"github.com/resonancehq/climatecheck/internal/screen"
	"github.com/resonancehq/climatecheck/internal/ui/components"
	"github.com/resonancehq/climatecheck/internal/ui/layout"
	"github.com/resonancehq/climatecheck/internal/ui/theme"
)

const (
	planTimeout = 90 * time.Second
	pdfFileName = "Climate_Tech_Readiness_Report.pdf"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type planReadyMsg struct {
	result plan.Result
}

type spinnerTickMsg struct{}

type exportDoneMsg struct {
	action string
	err    error
}

// Screen renders the final results step.
type Screen struct {
	state *assessment.State
	plans *plan.Service

	scores scoring.Scores
	level  scoring.ReadinessLevel

	planResult plan.Result
	planReady  bool
	spinner    int

	menu      components.Menu
	statusMsg string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New scores the completed assessment and prepares the results view.
func New(state *assessment.State, plans *plan.Service) *Screen {
	scores := scoring.Compute(state.Bank(), state)
	s := &Screen{
		state:  state,
		plans:  plans,
		scores: scores,
		level:  scoring.Classify(scores.Total().Percentage),
	}
	s.menu = s.buildMenu()
	return s
}

func (s *Screen) Title() string {
	return "Your Results"
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.requestPlan(), spinnerTick())
}

// requestPlan kicks off plan generation for the current session. The
// session id guards against a stale result arriving after a restart.
func (s *Screen) requestPlan() tea.Cmd {
	input := plan.Input{
		Bank:      s.state.Bank(),
		Profile:   s.profile(),
		Scores:    s.scores,
		SessionID: s.state.SessionID(),
	}
	svc := s.plans
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), planTimeout)
		defer cancel()
		return planReadyMsg{result: svc.Generate(ctx, input)}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (s *Screen) buildMenu() components.Menu {
	pending := !s.planReady
	return components.NewMenu([]components.MenuItem{
		{
			Label:    "Download PDF report",
			Disabled: pending,
			Action: func() tea.Cmd {
				r := s.report()
				return func() tea.Msg {
					return exportDoneMsg{action: "pdf", err: report.WritePDF(r, pdfFileName)}
				}
			},
		},
		{
			Label:    "Email my report",
			Disabled: pending,
			Action: func() tea.Cmd {
				r := s.report()
				return func() tea.Msg {
					return exportDoneMsg{action: "email", err: report.OpenMailto(report.MailtoURL(r))}
				}
			},
		},
		{
			Label: "Start a new assessment",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return screen.RestartRequestedMsg{}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	})
}

func (s *Screen) report() report.Report {
	return report.Report{
		Bank:    s.state.Bank(),
		Profile: s.profile(),
		Scores:  s.scores,
		Level:   s.level,
		Plan:    s.planResult,
	}
}

// profile returns the captured intake profile. Results are only
// reachable after intake, but a zero value beats a nil deref.
func (s *Screen) profile() assessment.CompanyProfile {
	if p := s.state.Profile(); p != nil {
		return *p
	}
	return assessment.CompanyProfile{}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planReadyMsg:
		if msg.result.SessionID != s.state.SessionID() {
			// Result from a session that has since been restarted.
			return s, nil
		}
		s.planResult = msg.result
		s.planReady = true
		s.menu = s.buildMenu()
		return s, nil

	case spinnerTickMsg:
		if s.planReady {
			return s, nil
		}
		s.spinner = (s.spinner + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case exportDoneMsg:
		switch {
		case msg.err != nil:
			s.statusMsg = theme.Invalid.Render("Export failed: " + msg.err.Error())
		case msg.action == "pdf":
			s.statusMsg = theme.Hint.Render("Saved " + pdfFileName + " to the current directory.")
		case msg.action == "email":
			s.statusMsg = theme.Hint.Render("Opened a pre-filled draft in your email client.")
		}
		return s, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *Screen) View(width, height int) string {
	total := s.scores.Total()

	var b strings.Builder

	b.WriteString(theme.Title.Render("Climate Tech Readiness Results"))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("%d / %d points (%d%%)", total.RawScore, total.MaxScore, total.Percentage)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.level.Label))
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(scoreLine))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(s.level.Description))
	b.WriteString("\n\n")

	barWidth := min(width-40, 36)
	if barWidth < 12 {
		barWidth = 12
	}
	for _, section := range s.state.Bank().Sections {
		sc := s.scores[section.ID]
		bar := components.NewProgressBar(section.Title, float64(sc.Percentage)/100, false, barWidth)
		b.WriteString(bar.View())
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d", sc.RawScore, sc.MaxScore)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.renderPlan(width))
	b.WriteString("\n")

	b.WriteString(s.menu.View())

	if s.statusMsg != "" {
		b.WriteString("\n" + s.statusMsg)
	}

	content := lipgloss.NewStyle().Width(min(width-4, 92)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

// renderPlan shows the generation spinner, a fallback notice when the
// plan did not come from the model, and the plan itself.
func (s *Screen) renderPlan(width int) string {
	if !s.planReady {
		return lipgloss.NewStyle().Foreground(theme.Accent).
			Render(spinnerFrames[s.spinner]+" Generating your personalized action plan...") + "\n"
	}

	var b strings.Builder

	switch s.planResult.Status {
	case plan.StatusNoCredentials:
		b.WriteString(theme.Hint.Render("No AI credentials configured; showing general recommendations."))
		b.WriteString("\n\n")
	case plan.StatusFailed:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).
			Render("Plan generation was unavailable; showing general recommendations."))
		b.WriteString("\n\n")
	}

	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	item := lipgloss.NewStyle().Foreground(theme.Text)

	for _, sec := range planDisplaySections(s.planResult.Plan) {
		if len(sec.Items) == 0 {
			continue
		}
		b.WriteString(heading.Render(sec.Heading) + "\n")
		for _, it := range sec.Items {
			b.WriteString(item.Render("  • "+it) + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

type displaySection struct {
	Heading string
	Items   []string
}

func planDisplaySections(p plan.ActionPlan) []displaySection {
	return []displaySection{
		{"Priority Areas", p.PriorityAreas},
		{"Immediate Actions (0-6 months)", p.ImmediateActions},
		{"Short-Term Actions (6-18 months)", p.ShortTermActions},
		{"Long-Term Actions (18+ months)", p.LongTermActions},
		{"Industry-Specific Recommendations", p.IndustrySpecific},
		{"Goal-Specific Recommendations", p.GoalSpecific},
	}
}
