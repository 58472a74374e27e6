// Package components provides reusable TUI components for fightsongs.
package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// Checkbox is a toggle checkbox component. The id carries the value it
// selects, such as a trope key or conference name.
type Checkbox struct {
	label   string
	checked bool
	focused bool
	id      string
	swatch  lipgloss.Color
}

// NewCheckbox creates a new Checkbox component.
func NewCheckbox(id, label string) *Checkbox {
	return &Checkbox{
		label: label,
		id:    id,
	}
}

// ID returns the component's unique identifier.
func (c *Checkbox) ID() string {
	return c.id
}

// Focus focuses the checkbox.
func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes focus from the checkbox.
func (c *Checkbox) Blur() {
	c.focused = false
}

// Focused returns whether the checkbox is focused.
func (c *Checkbox) Focused() bool {
	return c.focused
}

// Toggle toggles the checkbox state.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
}

// SetChecked sets the checkbox state.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Checked returns whether the checkbox is checked.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetSwatch shows a colored marker before the label, tying the box to a
// chart series.
func (c *Checkbox) SetSwatch(color lipgloss.Color) {
	c.swatch = color
}

// Update handles messages for the checkbox. It reports whether the state
// changed.
func (c *Checkbox) Update(msg tea.Msg) (changed bool) {
	if !c.focused {
		return false
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			c.Toggle()
			return true
		}
	}

	return false
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	var box string
	if c.checked {
		box = styles.CheckboxCheckedStyle.Render("[✓]")
	} else {
		box = styles.CheckboxUncheckedStyle.Render("[ ]")
	}

	labelStyle := styles.LabelStyle
	if c.focused {
		labelStyle = styles.LabelFocusedStyle
		box = styles.LabelFocusedStyle.Render("›") + box
	} else {
		box = " " + box
	}

	label := labelStyle.Render(c.label)
	if c.swatch != "" {
		label = lipgloss.NewStyle().Foreground(c.swatch).Render("■") + " " + label
	}

	return box + " " + label
}

// SetLabel sets the checkbox label.
func (c *Checkbox) SetLabel(label string) {
	c.label = label
}

// Label returns the checkbox label.
func (c *Checkbox) Label() string {
	return c.label
}

// CheckedIDs returns the ids of the checked boxes, in order.
func CheckedIDs(boxes []*Checkbox) []string {
	ids := make([]string, 0, len(boxes))
	for _, b := range boxes {
		if b.Checked() {
			ids = append(ids, b.ID())
		}
	}
	return ids
}
