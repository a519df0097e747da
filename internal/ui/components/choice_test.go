package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestChoiceStartsUnselected(t *testing.T) {
	c := NewChoice([]string{"a", "b", "c"})
	if c.Selected() {
		t.Error("fresh choice reports a selection")
	}
}

func TestChoiceNavigationAndSelect(t *testing.T) {
	c := NewChoice([]string{"a", "b", "c"})

	c, _ = c.Update(press(tea.KeyDown))
	c, _ = c.Update(press(tea.KeyDown))
	if c.Cursor != 2 {
		t.Fatalf("Cursor = %d, want 2", c.Cursor)
	}

	c, _ = c.Update(press(tea.KeyDown))
	if c.Cursor != 2 {
		t.Error("cursor moved past the last option")
	}

	c, _ = c.Update(press(tea.KeyEnter))
	if !c.Selected() || c.Chosen != 2 {
		t.Errorf("Chosen = %d, want 2", c.Chosen)
	}
}

func TestChoiceReselectMoves(t *testing.T) {
	c := NewChoiceWithSelection([]string{"a", "b", "c"}, 2)
	if !c.Selected() || c.Cursor != 2 {
		t.Fatalf("seeded choice: Chosen=%d Cursor=%d", c.Chosen, c.Cursor)
	}

	c, _ = c.Update(press(tea.KeyUp))
	c, _ = c.Update(press(tea.KeyEnter))
	if c.Chosen != 1 {
		t.Errorf("Chosen = %d, want 1", c.Chosen)
	}
}

func TestChecklistToggle(t *testing.T) {
	c := NewChecklist([]string{"a", "b", "c"})
	if len(c.Selection()) != 0 {
		t.Fatal("fresh checklist has checked options")
	}

	c, _ = c.Update(press(' '))
	c, _ = c.Update(press(tea.KeyDown))
	c, _ = c.Update(press(' '))

	sel := c.Selection()
	if len(sel) != 2 || sel[0] != "a" || sel[1] != "b" {
		t.Fatalf("Selection() = %v, want [a b]", sel)
	}

	c, _ = c.Update(press(' '))
	if sel := c.Selection(); len(sel) != 1 || sel[0] != "a" {
		t.Errorf("Selection() = %v after untoggle, want [a]", sel)
	}
}

func TestChecklistSeededSelection(t *testing.T) {
	c := NewChecklistWithSelection([]string{"a", "b", "c"}, []string{"c", "a", "bogus"})
	sel := c.Selection()
	if len(sel) != 2 || sel[0] != "a" || sel[1] != "c" {
		t.Errorf("Selection() = %v, want [a c] in option order", sel)
	}
}
