package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/resonancehq/climatecheck/internal/ui/theme"
)

// Checklist is a multi-select option list. Space toggles the option under
// the cursor; any subset (including none) is a valid selection.
type Checklist struct {
	Options []string
	Cursor  int
	Checked []bool
}

// NewChecklist creates a checklist with nothing checked.
func NewChecklist(options []string) Checklist {
	return Checklist{
		Options: options,
		Checked: make([]bool, len(options)),
	}
}

// NewChecklistWithSelection creates a checklist with the given option
// texts pre-checked, used when the user navigates back to an answered
// question.
func NewChecklistWithSelection(options []string, checked []string) Checklist {
	c := NewChecklist(options)
	for _, text := range checked {
		for i, opt := range options {
			if opt == text {
				c.Checked[i] = true
				break
			}
		}
	}
	return c
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		c.Checked[c.Cursor] = !c.Checked[c.Cursor]
	}

	return c, nil
}

// Selection returns the checked option texts in option order.
func (c Checklist) Selection() []string {
	var sel []string
	for i, checked := range c.Checked {
		if checked {
			sel = append(sel, c.Options[i])
		}
	}
	return sel
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, opt := range c.Options {
		marker := "[ ]"
		if c.Checked[i] {
			marker = "[✓]"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, opt)

		switch {
		case c.Checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		}
	}
	return s
}
