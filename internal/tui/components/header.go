package components

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	Title     string
	Source    string
	Songs     int
	SessionID string
}

// Header is a component that displays dataset info in a header bar.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			Title:  "FIGHT SONGS",
			Source: "-",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetSessionID sets the session ID.
func (h *Header) SetSessionID(id string) {
	h.data.SessionID = id
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render(h.data.Title)

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	source := h.data.Source
	if source != "" && source != "-" {
		source = filepath.Base(source)
	}

	content := fmt.Sprintf("%s%s%s%s%s%s",
		title, sep,
		styles.HeaderLabelStyle.Render("Data: "), styles.HeaderValueStyle.Render(source), sep,
		styles.HeaderValueStyle.Render(fmt.Sprintf("%d songs", h.data.Songs)),
	)

	if h.data.SessionID != "" && h.data.SessionID != "-" {
		shortSession := h.data.SessionID
		if len(shortSession) > 8 {
			shortSession = shortSession[:8]
		}
		content = fmt.Sprintf("%s%s%s%s", content, sep,
			styles.HeaderLabelStyle.Render("Session: "), styles.HeaderValueStyle.Render(shortSession))
	}

	headerStyle := lipgloss.NewStyle().
		Background(styles.Primary).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}
