// Package profile implements the company profile intake step. The
// assessment cannot start until every mandatory field validates.
package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/resonancehq/climatecheck/internal/assessment"
	"github.com/resonancehq/climatecheck/internal/plan"
	"github.com/resonancehq/climatecheck/internal/router"
	"github.com/resonancehq/climatecheck/internal/screen"
	"github.com/resonancehq/climatecheck/internal/screens/questionnaire"
	"github.com/resonancehq/climatecheck/internal/ui/components"
	"github.com/resonancehq/climatecheck/internal/ui/layout"
	"github.com/resonancehq/climatecheck/internal/ui/theme"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSelect
)

// field is one intake form entry; either a free-text input or a pick
// from a fixed catalog.
type field struct {
	key      string
	label    string
	optional bool
	kind     fieldKind
	options  []string

	input  components.TextInput
	choice components.Choice
	value  string
	errMsg string
}

// Screen walks the user through the intake form one field at a time.
type Screen struct {
	state  *assessment.State
	plans  *plan.Service
	fields []field
	index  int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the intake screen over a fresh assessment state.
func New(state *assessment.State, plans *plan.Service) *Screen {
	text := func(key, label, placeholder string, optional bool) field {
		return field{
			key:      key,
			label:    label,
			optional: optional,
			kind:     fieldText,
			input:    components.NewTextInput(placeholder, false, 60),
		}
	}
	pick := func(key, label string, options []string) field {
		return field{
			key:     key,
			label:   label,
			kind:    fieldSelect,
			options: options,
			choice:  components.NewChoice(options),
		}
	}

	return &Screen{
		state: state,
		plans: plans,
		fields: []field{
			text("name", "Your name", "Jane Doe", false),
			text("role", "Your role", "Head of Sustainability", false),
			text("email", "Work email", "jane@example.com", false),
			text("phone", "Phone (optional)", "+1 555 000 0000", true),
			text("company", "Company name", "Acme Corp", false),
			pick("industry", "Industry", assessment.IndustryOptions),
			pick("size", "Company size", assessment.CompanySizeOptions),
			pick("goal", "Primary climate goal", assessment.PrimaryGoalOptions),
			pick("timeframe", "Implementation timeframe", assessment.TimeframeOptions),
			pick("scope", "Geographic scope", assessment.GeographicScopeOptions),
			text("initiatives", "Current climate initiatives (optional)", "Describe anything already underway", true),
		},
	}
}

func (s *Screen) Title() string {
	return "Company Profile"
}

func (s *Screen) Init() tea.Cmd {
	return s.fields[0].input.Init()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Confirm"},
	}
	if s.fields[s.index].kind == fieldSelect {
		hints = append([]layout.KeyHint{{Key: "↑↓", Description: "Choose"}}, hints...)
	}
	if s.index > 0 {
		hints = append(hints, layout.KeyHint{Key: "Shift+Tab", Description: "Back"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f := &s.fields[s.index]

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "shift+tab":
			if s.index > 0 {
				s.index--
			}
			return s, nil
		case "enter":
			return s.confirmField()
		}
	}

	switch f.kind {
	case fieldText:
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return s, cmd
	case fieldSelect:
		var cmd tea.Cmd
		f.choice, cmd = f.choice.Update(msg)
		return s, cmd
	}
	return s, nil
}

// confirmField validates the active field, stores its value, and either
// advances or finishes the form.
func (s *Screen) confirmField() (screen.Screen, tea.Cmd) {
	f := &s.fields[s.index]

	switch f.kind {
	case fieldText:
		f.value = strings.TrimSpace(f.input.Value())
		if f.value == "" && !f.optional {
			f.errMsg = "This field is required."
			f.input.Submit(false)
			return s, nil
		}
		if f.key == "email" {
			if errs := (assessment.CompanyProfile{UserEmail: f.value}).Validate(); fieldError(errs, "email") != "" {
				f.errMsg = "Please enter a valid email address."
				f.input.Submit(false)
				return s, nil
			}
		}
		f.input.Submit(true)
	case fieldSelect:
		if !f.choice.Selected() {
			// Selection happens on the same Enter press.
			f.choice.Chosen = f.choice.Cursor
		}
		f.value = f.options[f.choice.Chosen]
	}
	f.errMsg = ""

	if s.index < len(s.fields)-1 {
		s.index++
		next := &s.fields[s.index]
		if next.kind == fieldText {
			return s, next.input.Init()
		}
		return s, nil
	}

	return s.finish()
}

// finish assembles the profile, runs full validation, and hands off to
// the questionnaire.
func (s *Screen) finish() (screen.Screen, tea.Cmd) {
	p := assessment.CompanyProfile{
		UserName:        s.valueOf("name"),
		UserRole:        s.valueOf("role"),
		UserPhone:       s.valueOf("phone"),
		UserEmail:       s.valueOf("email"),
		CompanyName:     s.valueOf("company"),
		Industry:        s.valueOf("industry"),
		CompanySize:     s.valueOf("size"),
		PrimaryGoal:     s.valueOf("goal"),
		Timeframe:       s.valueOf("timeframe"),
		GeographicScope: s.valueOf("scope"),
		Initiatives:     s.valueOf("initiatives"),
	}

	if errs := p.Validate(); len(errs) > 0 {
		// Jump back to the first offending field.
		for i := range s.fields {
			if msg := fieldError(errs, s.fields[i].key); msg != "" {
				s.index = i
				s.fields[i].errMsg = msg
				break
			}
		}
		return s, nil
	}

	s.state.SetProfile(p)
	next := questionnaire.New(s.state, s.plans)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *Screen) valueOf(key string) string {
	for i := range s.fields {
		if s.fields[i].key == key {
			return s.fields[i].value
		}
	}
	return ""
}

func fieldError(errs []assessment.FieldError, key string) string {
	for _, e := range errs {
		if e.Field == key {
			return e.Message
		}
	}
	return ""
}

func (s *Screen) View(width, height int) string {
	f := &s.fields[s.index]

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Climate Tech Adoption Readiness Assessment"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Tell us about your company before we begin."))
	b.WriteString("\n\n")

	step := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Step %d of %d", s.index+1, len(s.fields)))
	b.WriteString(step + "\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(f.label))
	b.WriteString("\n\n")

	switch f.kind {
	case fieldText:
		b.WriteString(f.input.View())
	case fieldSelect:
		b.WriteString(f.choice.View())
	}

	if f.errMsg != "" {
		b.WriteString("\n" + theme.Invalid.Render(f.errMsg))
	}

	content := lipgloss.NewStyle().Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
