package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/resonancehq/climatecheck/internal/ui/theme"
)

// Choice is a single-select option list. One option is highlighted by the
// cursor; the chosen option, if any, is marked.
type Choice struct {
	Options []string
	Cursor  int
	// Chosen is the index of the recorded selection, -1 when unanswered.
	Chosen int
}

// NewChoice creates a single-select list with no recorded selection.
func NewChoice(options []string) Choice {
	return Choice{Options: options, Chosen: -1}
}

// NewChoiceWithSelection creates a list with an existing selection, used
// when the user navigates back to an answered question.
func NewChoiceWithSelection(options []string, chosen int) Choice {
	cursor := chosen
	if cursor < 0 {
		cursor = 0
	}
	return Choice{Options: options, Cursor: cursor, Chosen: chosen}
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
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
	case "enter", "space", " ":
		c.Chosen = c.Cursor
	}

	return c, nil
}

// Selected reports whether an option has been chosen.
func (c Choice) Selected() bool {
	return c.Chosen >= 0
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		marker := "( )"
		if i == c.Chosen {
			marker = "(●)"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, opt)

		switch {
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		}
	}
	return s
}
