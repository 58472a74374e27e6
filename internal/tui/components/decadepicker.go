package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// DecadePicker is a row of decade buttons. At most one decade is picked;
// nothing is picked until the user presses a button.
type DecadePicker struct {
	label    string
	decades  []int
	cursor   int
	selected int
	picked   bool
	focused  bool
}

// NewDecadePicker creates an empty picker.
func NewDecadePicker(label string) *DecadePicker {
	return &DecadePicker{label: label}
}

// SetDecades replaces the buttons. The picked decade survives even when it
// is no longer offered, and the cursor stays on the same decade if it can.
func (p *DecadePicker) SetDecades(decades []int) {
	var at int
	if p.cursor < len(p.decades) {
		at = p.decades[p.cursor]
	}
	p.decades = append(p.decades[:0:0], decades...)
	p.cursor = 0
	for i, d := range p.decades {
		if d == at {
			p.cursor = i
		}
	}
}

// Decades returns the offered decades.
func (p *DecadePicker) Decades() []int {
	return p.decades
}

// Selected returns the picked decade, if any.
func (p *DecadePicker) Selected() (int, bool) {
	return p.selected, p.picked
}

// Select picks decade d if it is offered. It reports whether the pick changed.
func (p *DecadePicker) Select(d int) bool {
	for i, x := range p.decades {
		if x != d {
			continue
		}
		p.cursor = i
		if p.picked && p.selected == d {
			return false
		}
		p.selected, p.picked = d, true
		return true
	}
	return false
}

// Step picks the decade delta buttons away from the current pick, or the
// one under the cursor when nothing is picked yet.
func (p *DecadePicker) Step(delta int) bool {
	if len(p.decades) == 0 {
		return false
	}
	i := p.cursor
	if p.picked {
		i += delta
	}
	if i < 0 || i >= len(p.decades) {
		return false
	}
	return p.Select(p.decades[i])
}

// Focus focuses the picker.
func (p *DecadePicker) Focus() tea.Cmd {
	p.focused = true
	return nil
}

// Blur removes focus from the picker.
func (p *DecadePicker) Blur() {
	p.focused = false
}

// Focused returns whether the picker is focused.
func (p *DecadePicker) Focused() bool {
	return p.focused
}

// Update moves the cursor on left/right or h/l and picks on enter or space
// while focused. It reports whether the pick changed.
func (p *DecadePicker) Update(msg tea.Msg) (changed bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused || len(p.decades) == 0 {
		return false
	}
	switch key.String() {
	case "left", "h":
		if p.cursor > 0 {
			p.cursor--
		}
	case "right", "l":
		if p.cursor < len(p.decades)-1 {
			p.cursor++
		}
	case " ", "enter":
		return p.Select(p.decades[p.cursor])
	}
	return false
}

// View renders the buttons on one line.
func (p *DecadePicker) View() string {
	labelStyle := styles.LabelStyle
	prefix := " "
	if p.focused {
		labelStyle = styles.LabelFocusedStyle
		prefix = styles.LabelFocusedStyle.Render("›")
	}
	if len(p.decades) == 0 {
		return fmt.Sprintf("%s %s %s", prefix, labelStyle.Render(p.label+":"), styles.MutedTextStyle.Render("(none)"))
	}

	buttons := make([]string, len(p.decades))
	for i, d := range p.decades {
		style := lipgloss.NewStyle().Foreground(styles.Muted)
		if p.picked && d == p.selected {
			style = lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true)
		}
		if p.focused && i == p.cursor {
			style = style.Underline(true)
		}
		buttons[i] = style.Render(fmt.Sprintf("[%ds]", d))
	}
	return fmt.Sprintf("%s %s %s", prefix, labelStyle.Render(p.label+":"), strings.Join(buttons, " "))
}
