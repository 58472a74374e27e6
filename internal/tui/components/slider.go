package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// Slider picks an integer between min and max in fixed steps.
type Slider struct {
	label    string
	min      int
	max      int
	step     int
	value    int
	focused  bool
	format   func(int) string
	trackLen int
}

// NewSlider creates a slider over lo..hi starting at lo. A step below 1 is treated as 1.
func NewSlider(label string, lo, hi, step int) *Slider {
	if step < 1 {
		step = 1
	}
	if hi < lo {
		hi = lo
	}
	return &Slider{
		label:    label,
		min:      lo,
		max:      hi,
		step:     step,
		value:    lo,
		format:   func(v int) string { return fmt.Sprint(v) },
		trackLen: 24,
	}
}

// SetFormat sets how the value is printed.
func (s *Slider) SetFormat(format func(int) string) {
	s.format = format
}

// Value returns the current value.
func (s *Slider) Value() int {
	return s.value
}

// SetValue snaps v onto the slider's range and step.
func (s *Slider) SetValue(v int) {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	s.value = s.min + (v-s.min)/s.step*s.step
}

// Increment moves one step up. It reports whether the value changed.
func (s *Slider) Increment() bool {
	old := s.value
	s.SetValue(s.value + s.step)
	return s.value != old
}

// Decrement moves one step down. It reports whether the value changed.
func (s *Slider) Decrement() bool {
	old := s.value
	s.SetValue(s.value - s.step)
	return s.value != old
}

// Focus focuses the slider.
func (s *Slider) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// Blur removes focus from the slider.
func (s *Slider) Blur() {
	s.focused = false
}

// Focused returns whether the slider is focused.
func (s *Slider) Focused() bool {
	return s.focused
}

// Update moves the slider on left/right or h/l while focused. It reports
// whether the value changed.
func (s *Slider) Update(msg tea.Msg) (changed bool) {
	if !s.focused {
		return false
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left", "h":
			return s.Decrement()
		case "right", "l":
			return s.Increment()
		case "home":
			old := s.value
			s.SetValue(s.min)
			return s.value != old
		case "end":
			old := s.value
			s.SetValue(s.max)
			return s.value != old
		}
	}
	return false
}

// View renders the slider.
func (s *Slider) View() string {
	labelStyle := styles.LabelStyle
	prefix := " "
	if s.focused {
		labelStyle = styles.LabelFocusedStyle
		prefix = styles.LabelFocusedStyle.Render("›")
	}

	pos := 0
	if s.max > s.min {
		pos = (s.value - s.min) * (s.trackLen - 1) / (s.max - s.min)
	}
	track := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", pos)) +
		lipgloss.NewStyle().Foreground(styles.Secondary).Render("●") +
		lipgloss.NewStyle().Foreground(styles.Muted).Render(strings.Repeat("─", s.trackLen-1-pos))

	bounds := styles.MutedTextStyle
	value := lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true).Render(s.format(s.value))

	return fmt.Sprintf("%s %s %s %s %s  %s",
		prefix,
		labelStyle.Render(s.label+":"),
		bounds.Render(s.format(s.min)),
		track,
		bounds.Render(s.format(s.max)),
		value,
	)
}
