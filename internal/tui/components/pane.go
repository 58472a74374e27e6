package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// Pane is a scrollable content area with a title bar. Tabs render their
// charts and narrative text into it.
type Pane struct {
	viewport viewport.Model
	title    string
	content  string
	width    int
	height   int
}

// NewPane creates a new Pane component.
func NewPane() *Pane {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderColor)

	return &Pane{
		viewport: vp,
		width:    80,
		height:   21,
	}
}

// SetTitle sets the pane title.
func (p *Pane) SetTitle(title string) {
	p.title = title
}

// Title returns the pane title.
func (p *Pane) Title() string {
	return p.title
}

// SetSize sets the pane dimensions, title bar included.
func (p *Pane) SetSize(width, height int) {
	if width < 10 {
		width = 10
	}
	if height < 4 {
		height = 4
	}
	p.width = width
	p.height = height
	// Account for border and title
	p.viewport.Width = width - 2
	p.viewport.Height = height - 3
}

// SetContent replaces the content and scrolls back to the top.
func (p *Pane) SetContent(content string) {
	p.content = content
	p.viewport.SetContent(content)
	p.viewport.GotoTop()
}

// Content returns the current content.
func (p *Pane) Content() string {
	return p.content
}

// ScrollUp scrolls up n lines.
func (p *Pane) ScrollUp(n int) {
	p.viewport.LineUp(n)
}

// ScrollDown scrolls down n lines.
func (p *Pane) ScrollDown(n int) {
	p.viewport.LineDown(n)
}

// PageUp scrolls up half a page.
func (p *Pane) PageUp() {
	p.viewport.HalfViewUp()
}

// PageDown scrolls down half a page.
func (p *Pane) PageDown() {
	p.viewport.HalfViewDown()
}

// AtTop reports whether the pane shows the first line.
func (p *Pane) AtTop() bool {
	return p.viewport.AtTop()
}

// Update scrolls on pgup/pgdown and ctrl+u/ctrl+d. Other keys are left to
// the tab controls.
func (p *Pane) Update(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	switch key.String() {
	case "pgup", "ctrl+u":
		p.PageUp()
		return true
	case "pgdown", "ctrl+d":
		p.PageDown()
		return true
	}
	return false
}

// View renders the pane.
func (p *Pane) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(true).
		Padding(0, 1)

	scrollInfo := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(fmt.Sprintf(" %.0f%%", p.viewport.ScrollPercent()*100))

	return titleStyle.Render(p.title) + scrollInfo + "\n" + p.viewport.View()
}
