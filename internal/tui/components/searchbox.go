package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// schoolNameLimit bounds a query; no school name comes close.
const schoolNameLimit = 64

// SearchBox is the one-line school name search.
type SearchBox struct {
	input textinput.Model
}

// NewSearchBox creates an empty, blurred search box.
func NewSearchBox() *SearchBox {
	in := textinput.New()
	in.Prompt = "School: "
	in.Placeholder = "type part of a school name"
	in.CharLimit = schoolNameLimit
	in.Width = 30
	in.PromptStyle = styles.LabelStyle
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.Muted)
	in.TextStyle = lipgloss.NewStyle().Foreground(styles.MutedLight)
	return &SearchBox{input: in}
}

// Focus starts editing.
func (s *SearchBox) Focus() tea.Cmd {
	s.input.PromptStyle = styles.LabelFocusedStyle
	s.input.TextStyle = lipgloss.NewStyle().Foreground(styles.Foreground)
	return s.input.Focus()
}

// Blur stops editing and keeps the text.
func (s *SearchBox) Blur() {
	s.input.PromptStyle = styles.LabelStyle
	s.input.TextStyle = lipgloss.NewStyle().Foreground(styles.MutedLight)
	s.input.Blur()
}

// Focused reports whether the box is being edited.
func (s *SearchBox) Focused() bool {
	return s.input.Focused()
}

// Query returns the text with surrounding space removed.
func (s *SearchBox) Query() string {
	return strings.TrimSpace(s.input.Value())
}

// SetQuery replaces the text and moves the cursor to its end.
func (s *SearchBox) SetQuery(q string) {
	s.input.SetValue(q)
	s.input.CursorEnd()
}

// Clear empties the box.
func (s *SearchBox) Clear() {
	s.input.Reset()
}

// SetWidth fits the box, prompt included, into width cells.
func (s *SearchBox) SetWidth(width int) {
	s.input.Width = width - lipgloss.Width(s.input.Prompt) - 1
	if s.input.Width < 10 {
		s.input.Width = 10
	}
}

// Update edits the text while focused.
func (s *SearchBox) Update(msg tea.Msg) tea.Cmd {
	if !s.input.Focused() {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the prompt and the text.
func (s *SearchBox) View() string {
	return s.input.View()
}
