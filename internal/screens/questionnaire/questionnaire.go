// Package questionnaire implements the question-by-question assessment
// flow. Answers are recorded into the shared assessment state and can
// be revisited; moving forward requires the current question to have a
// recorded answer.
package questionnaire

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/resonancehq/climatecheck/internal/assessment"
	"github.com/resonancehq/climatecheck/internal/plan"
	"github.com/resonancehq/climatecheck/internal/router"
	"github.com/resonancehq/climatecheck/internal/screen"
	"github.com/resonancehq/climatecheck/internal/screens/results"
	"github.com/resonancehq/climatecheck/internal/ui/components"
	"github.com/resonancehq/climatecheck/internal/ui/layout"
	"github.com/resonancehq/climatecheck/internal/ui/theme"
)

// Screen renders one question at a time and tracks progress across the
// whole question bank.
type Screen struct {
	state *assessment.State
	plans *plan.Service

	choice    components.Choice
	checklist components.Checklist
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the questionnaire over the shared state, resuming at the
// state's current cursor.
func New(state *assessment.State, plans *plan.Service) *Screen {
	s := &Screen{state: state, plans: plans}
	s.loadQuestion()
	return s
}

func (s *Screen) Title() string {
	return s.state.CurrentSection().Title
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

// loadQuestion rebuilds the input component for the current question,
// seeding it from any previously recorded answer.
func (s *Screen) loadQuestion() {
	section := s.state.CurrentSection()
	q := s.state.CurrentQuestion()

	texts := make([]string, len(q.Options))
	for i, o := range q.Options {
		texts[i] = o.Text
	}

	prev, answered := s.state.AnswerFor(section.ID, q.ID)

	switch q.Kind {
	case assessment.MultiSelect:
		var checked []string
		if answered {
			checked = prev.Options
		}
		s.checklist = components.NewChecklistWithSelection(texts, checked)
	default:
		chosen := -1
		if answered {
			for i, t := range texts {
				if t == prev.Option {
					chosen = i
					break
				}
			}
		}
		s.choice = components.NewChoiceWithSelection(texts, chosen)
	}
}

func (s *Screen) answered() bool {
	return s.state.Answered(s.state.CurrentSection().ID, s.state.CurrentQuestion().ID)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	q := s.state.CurrentQuestion()
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Move"}}
	if q.Kind == assessment.MultiSelect {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Select"})
	}
	if !s.state.AtStart() {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	if s.answered() {
		label := "Next"
		if s.state.AtEnd() {
			label = "Results"
		}
		hints = append(hints, layout.KeyHint{Key: "→", Description: label})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "p":
			if !s.state.AtStart() {
				s.state.Retreat()
				s.loadQuestion()
			}
			return s, nil
		case "right", "n":
			return s.advance()
		}
	}

	section := s.state.CurrentSection()
	q := s.state.CurrentQuestion()

	switch q.Kind {
	case assessment.MultiSelect:
		var cmd tea.Cmd
		before := s.checklist.Selection()
		s.checklist, cmd = s.checklist.Update(msg)
		if after := s.checklist.Selection(); len(after) != len(before) {
			s.state.RecordAnswer(section.ID, assessment.MultiAnswer(*q, after))
		}
		return s, cmd
	default:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Selected() {
			s.state.RecordAnswer(section.ID, assessment.SingleAnswer(*q, s.choice.Options[s.choice.Chosen]))
		}
		return s, cmd
	}
}

// advance moves to the next question, or to results at the end. It is a
// no-op while the current question has no recorded answer.
func (s *Screen) advance() (screen.Screen, tea.Cmd) {
	if !s.answered() {
		return s, nil
	}
	if !s.state.AtEnd() {
		s.state.Advance()
		s.loadQuestion()
		return s, nil
	}
	next := results.New(s.state, s.plans)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *Screen) View(width, height int) string {
	section := s.state.CurrentSection()
	q := s.state.CurrentQuestion()
	sectionIdx, questionIdx := s.state.Cursor()

	var b strings.Builder

	heading := fmt.Sprintf("Section %d of %d · %s", sectionIdx+1, len(s.state.Bank().Sections), section.Title)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(heading))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(section.Description))
	b.WriteString("\n\n")

	counter := fmt.Sprintf("Question %d of %d", questionIdx+1, len(section.Questions))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Text))
	b.WriteString("\n")

	industry := ""
	if p := s.state.Profile(); p != nil {
		industry = p.Industry
	}
	if help := assessment.HelpTextFor(*q, industry); help != "" {
		b.WriteString(theme.Hint.Render(help))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch q.Kind {
	case assessment.MultiSelect:
		b.WriteString(s.checklist.View())
	default:
		b.WriteString(s.choice.View())
	}

	if !s.answered() {
		b.WriteString("\n" + theme.Hint.Render("Answer to continue."))
	}

	content := lipgloss.NewStyle().Width(min(width-4, 88)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
