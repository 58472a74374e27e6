package tui

// ErrorMsg reports an error to show in the status bar.
type ErrorMsg struct {
	Error string
}

// QuitMsg asks the program to exit.
type QuitMsg struct{}

// SearchMsg applies a school search. An empty Query clears it.
type SearchMsg struct {
	Query string
}

// TabMsg switches to a tab.
type TabMsg struct {
	Tab Tab
}
