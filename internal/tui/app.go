// Package tui provides the terminal user interface for fightsongs.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/fightsongs/internal/aggregate"
	"github.com/dbmrq/fightsongs/internal/dataset"
	"github.com/dbmrq/fightsongs/internal/errors"
	"github.com/dbmrq/fightsongs/internal/explore"
	"github.com/dbmrq/fightsongs/internal/filter"
	"github.com/dbmrq/fightsongs/internal/logging"
	"github.com/dbmrq/fightsongs/internal/narrative"
	"github.com/dbmrq/fightsongs/internal/tui/components"
	"github.com/dbmrq/fightsongs/internal/tui/styles"
)

// Tab identifies one of the explorer's tabs.
type Tab int

const (
	TabOverview Tab = iota
	TabDecade
	TabConference
	TabAuthorship
)

var tabTitles = []string{"Overview", "By decade", "By conference", "By authorship"}

// String returns the tab title.
func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabTitles) {
		return "unknown"
	}
	return tabTitles[t]
}

// Options configures a Model.
type Options struct {
	Dataset *dataset.Dataset
	// Logger defaults to the global logger.
	Logger *logging.Logger
	// Narratives defaults to the embedded catalog.
	Narratives *narrative.Catalog
	// MinDecade is the decade slider's starting value.
	MinDecade int
	// Series are the trope lines checked on the decade tab. Nil checks
	// dataset.DecadeSeries.
	Series []dataset.Trope
	// Conferences are checked on the conference tab. Nil checks the
	// default selection.
	Conferences []string
	// SessionID defaults to a fresh id.
	SessionID string
}

// control is a focusable widget on a tab.
type control interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// Model is the Bubble Tea model for the fight songs explorer.
type Model struct {
	// Components
	header      *components.Header
	progress    *components.Progress
	tabs        *components.Tabs
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay
	search      *components.SearchBox
	pane        *components.Pane

	// Tab controls
	slider      *components.Slider
	picker      *components.DecadePicker
	series      []*components.Checkbox
	conferences []*components.Checkbox
	dimensions  []*components.Checkbox
	kind        explore.AuthorshipKind

	// Data
	ctx        context.Context
	ds         *dataset.Dataset
	pipeline   *explore.Pipeline
	scope      *explore.Pipeline
	narratives *narrative.Catalog
	logger     *logging.Logger
	sessionID  string
	query      string
	matched    int

	// Window dimensions
	width  int
	height int

	// Flags
	focus     int
	searching bool
	quitting  bool
	lastError string
}

// New creates a new TUI model over opts.Dataset.
func New(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = logging.Global()
	}
	if opts.Narratives == nil {
		opts.Narratives = narrative.Default()
	}
	if opts.SessionID == "" {
		opts.SessionID = logging.NewID()
	}
	if opts.MinDecade == 0 {
		opts.MinDecade = explore.FirstDecade
	}
	if opts.Series == nil {
		opts.Series = dataset.DecadeSeries
	}

	m := &Model{
		header:      components.NewHeader(),
		progress:    components.NewProgress(),
		tabs:        components.NewTabs(tabTitles...),
		statusBar:   components.NewStatusBar(),
		helpOverlay: components.NewHelpOverlay(),
		search:      components.NewSearchBox(),
		pane:        components.NewPane(),
		slider:      components.NewSlider("Minimum decade", explore.FirstDecade, explore.LastDecade, explore.DecadeStep),
		picker:      components.NewDecadePicker("Context"),
		kind:        explore.ByStudent,
		ctx:         logging.WithSessionID(context.Background(), opts.SessionID),
		ds:          opts.Dataset,
		pipeline:    explore.NewPipeline(opts.Dataset, opts.Logger),
		narratives:  opts.Narratives,
		logger:      opts.Logger,
		sessionID:   opts.SessionID,
		matched:     opts.Dataset.Len(),
		width:       80,
		height:      24,
	}
	m.scope = m.pipeline

	m.slider.SetFormat(func(v int) string { return fmt.Sprintf("%ds", v) })
	m.slider.SetValue(opts.MinDecade)

	m.series = tropeBoxes(offeredSeries(opts.Series), opts.Series)
	m.dimensions = tropeBoxes(dataset.RadarTropes, dataset.RadarTropes)

	selected := opts.Conferences
	if selected == nil {
		selected = explore.DefaultConferences(opts.Dataset)
	}
	m.rebuildConferences(selected)

	m.header.SetData(components.HeaderData{
		Title:     "FIGHT SONGS",
		Source:    opts.Dataset.Source(),
		Songs:     opts.Dataset.Len(),
		SessionID: opts.SessionID,
	})

	m.layout()
	m.refresh()
	return m
}

// offeredSeries is dataset.DecadeSeries followed by any extra tropes the
// caller checked.
func offeredSeries(checked []dataset.Trope) []dataset.Trope {
	offered := append([]dataset.Trope(nil), dataset.DecadeSeries...)
	for _, t := range checked {
		if !containsTrope(offered, t) {
			offered = append(offered, t)
		}
	}
	return offered
}

func containsTrope(tropes []dataset.Trope, t dataset.Trope) bool {
	for _, x := range tropes {
		if x == t {
			return true
		}
	}
	return false
}

func tropeBoxes(offered, checked []dataset.Trope) []*components.Checkbox {
	boxes := make([]*components.Checkbox, len(offered))
	for i, t := range offered {
		cb := components.NewCheckbox(t.Key(), t.Label())
		cb.SetSwatch(styles.TropeColor(t))
		cb.SetChecked(containsTrope(checked, t))
		boxes[i] = cb
	}
	return boxes
}

// rebuildConferences offers the top conferences of the current scope,
// keeping the selected names checked. If none of them is on offer the
// default selection is checked instead.
func (m *Model) rebuildConferences(selected []string) {
	ds := m.scope.Dataset()
	top, counts := explore.TopConferencesOf(ds, explore.TopConferences)

	want := make(map[string]bool, len(selected))
	for _, s := range selected {
		want[strings.ToLower(strings.TrimSpace(s))] = true
	}
	found := false
	for _, name := range top {
		if want[strings.ToLower(name)] {
			found = true
		}
	}
	if !found && len(selected) > 0 {
		want = make(map[string]bool)
		for _, name := range explore.DefaultConferences(ds) {
			want[strings.ToLower(name)] = true
		}
	}

	m.conferences = make([]*components.Checkbox, len(top))
	for i, name := range top {
		cb := components.NewCheckbox(name, fmt.Sprintf("%s (%d)", name, counts[name]))
		cb.SetSwatch(styles.ConferenceColor(name))
		cb.SetChecked(want[strings.ToLower(name)])
		m.conferences[i] = cb
	}
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.narratives.Title())
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The help overlay captures keys while visible
	if _, ok := msg.(tea.KeyMsg); ok && m.helpOverlay.IsVisible() {
		if cmd := m.helpOverlay.Update(msg); cmd != nil {
			return m, cmd
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.progress.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.tabs.SetWidth(msg.Width)
		m.search.SetWidth(msg.Width / 2)
		m.helpOverlay.SetSize(60, 25)
		m.layout()
		m.refresh()
		return m, nil

	case components.HelpClosedMsg:
		return m, nil

	case SearchMsg:
		m.search.SetQuery(msg.Query)
		m.applySearch(msg.Query)
		return m, nil

	case TabMsg:
		if m.tabs.Set(int(msg.Tab)) {
			m.switchTab()
		}
		return m, nil

	case ErrorMsg:
		m.lastError = msg.Error
		m.statusBar.SetError(msg.Error)
		return m, nil

	case QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleSearchKey handles keyboard input while the search box has focus.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.Clear()
		m.applySearch("")
		return m, nil

	case "enter":
		m.searching = false
		m.search.Blur()
		m.applySearch(m.search.Query())
		return m, nil
	}

	return m, m.search.Update(msg)
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.helpOverlay.Toggle()
		return m, nil

	case "/":
		m.searching = true
		m.updateStatus()
		return m, m.search.Focus()

	case "esc":
		if m.query != "" {
			m.search.Clear()
			m.applySearch("")
		}
		return m, nil

	case "tab":
		m.tabs.Next()
		m.switchTab()
		return m, nil

	case "shift+tab":
		m.tabs.Prev()
		m.switchTab()
		return m, nil

	case "1", "2", "3", "4":
		if m.tabs.Set(int(msg.String()[0] - '1')) {
			m.switchTab()
		}
		return m, nil

	case "down", "j":
		m.setFocus(m.focus + 1)
		return m, nil

	case "up", "k":
		m.setFocus(m.focus - 1)
		return m, nil
	}

	if m.pane.Update(msg) {
		return m, nil
	}

	switch m.ActiveTab() {
	case TabDecade:
		m.handleDecadeKey(msg)
	case TabConference:
		m.handleConferenceKey(msg)
	case TabAuthorship:
		m.handleAuthorshipKey(msg)
	}
	return m, nil
}

func (m *Model) handleDecadeKey(msg tea.KeyMsg) {
	changed := false
	switch {
	case msg.String() == "[", msg.String() == "]":
		delta := 1
		if msg.String() == "[" {
			delta = -1
		}
		if m.picker.Step(delta) {
			m.logPick()
			changed = true
		}
	case m.slider.Focused():
		changed = m.slider.Update(msg)
	case m.picker.Focused():
		if m.picker.Update(msg) {
			m.logPick()
			changed = true
		}
	case msg.String() == "left":
		changed = m.slider.Decrement()
	case msg.String() == "right":
		changed = m.slider.Increment()
	default:
		for _, cb := range m.series {
			if cb.Update(msg) {
				changed = true
			}
		}
	}
	if changed {
		m.refresh()
	}
}

func (m *Model) logPick() {
	if d, ok := m.picker.Selected(); ok {
		m.logger.WithContext(m.ctx).Debug("decade picked", "decade", d)
	}
}

func (m *Model) handleConferenceKey(msg tea.KeyMsg) {
	changed := false
	for _, cb := range m.conferences {
		if cb.Update(msg) {
			changed = true
		}
	}
	for _, cb := range m.dimensions {
		if cb.Update(msg) {
			changed = true
		}
	}
	if changed {
		m.refresh()
	}
}

func (m *Model) handleAuthorshipKey(msg tea.KeyMsg) {
	kind := m.kind
	switch msg.String() {
	case "left", "right", "h", "l", " ", "enter":
		if kind == explore.ByStudent {
			kind = explore.ByContest
		} else {
			kind = explore.ByStudent
		}
	case "s":
		kind = explore.ByStudent
	case "c":
		kind = explore.ByContest
	}
	if kind != m.kind {
		m.kind = kind
		m.refresh()
	}
}

// controls returns the focusable widgets of the active tab, top to bottom.
func (m *Model) controls() []control {
	var out []control
	switch m.ActiveTab() {
	case TabDecade:
		out = append(out, m.slider)
		for _, cb := range m.series {
			out = append(out, cb)
		}
		out = append(out, m.picker)
	case TabConference:
		for _, cb := range m.conferences {
			out = append(out, cb)
		}
		for _, cb := range m.dimensions {
			out = append(out, cb)
		}
	}
	return out
}

// setFocus moves focus to control i of the active tab, clamped to range.
func (m *Model) setFocus(i int) {
	ctrls := m.controls()
	if len(ctrls) == 0 {
		m.focus = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(ctrls) {
		i = len(ctrls) - 1
	}
	for _, c := range ctrls {
		c.Blur()
	}
	ctrls[i].Focus()
	m.focus = i
}

func (m *Model) blurAll() {
	m.slider.Blur()
	m.picker.Blur()
	for _, boxes := range [][]*components.Checkbox{m.series, m.conferences, m.dimensions} {
		for _, cb := range boxes {
			cb.Blur()
		}
	}
}

func (m *Model) switchTab() {
	m.blurAll()
	m.setFocus(0)
	m.logger.WithContext(m.ctx).Debug("tab", "tab", m.ActiveTab().String())
	m.layout()
	m.refresh()
}

// applySearch narrows every tab to the schools whose name contains q.
func (m *Model) applySearch(q string) {
	q = strings.TrimSpace(q)
	selected := components.CheckedIDs(m.conferences)
	m.lastError = ""

	if q == "" {
		m.query = ""
		m.scope = m.pipeline
		m.matched = m.ds.Len()
	} else {
		it, err := m.pipeline.Run(m.ctx, filter.Spec{School: q},
			aggregate.Request{GroupBy: aggregate.ByConference, Metric: aggregate.Count})
		if err != nil {
			m.setError(err)
			return
		}
		sub, err := dataset.New(it.Subset)
		if err != nil {
			m.setError(err)
			return
		}
		m.query = q
		m.scope = explore.NewPipeline(sub, m.logger)
		m.matched = it.Matched
	}

	m.rebuildConferences(selected)
	if m.ActiveTab() == TabConference {
		m.setFocus(m.focus)
	}
	m.layout()
	m.refresh()
}

func (m *Model) setError(err error) {
	m.lastError = err.Error()
	if appErr, ok := errors.As(err); ok && appErr.Suggestion != "" {
		m.lastError = appErr.Suggestion
	}
	m.logger.WithContext(m.ctx).Warn("interaction failed", "error", err)
	m.statusBar.SetError(m.lastError)
}

// filterDescription describes the active search, or "" for none.
func (m *Model) filterDescription() string {
	if m.query == "" {
		return ""
	}
	return filter.Spec{School: m.query}.Describe()
}

func (m *Model) updateStatus() {
	total := m.ds.Len()
	m.progress.SetData(components.ProgressData{
		Matched: m.matched,
		Total:   total,
		Filter:  m.filterDescription(),
	})

	shortcuts := components.OverviewShortcuts
	switch {
	case m.searching:
		shortcuts = components.SearchShortcuts
	case m.ActiveTab() == TabDecade:
		shortcuts = components.DecadeShortcuts
	case m.ActiveTab() == TabConference:
		shortcuts = components.ConferenceShortcuts
	case m.ActiveTab() == TabAuthorship:
		shortcuts = components.AuthorshipShortcuts
	}

	m.statusBar.SetCounts(m.matched, total)
	m.statusBar.SetFilter(m.filterDescription())
	m.statusBar.SetShortcuts(shortcuts)
	if m.lastError != "" {
		m.statusBar.SetError(m.lastError)
	} else {
		m.statusBar.SetMessage("")
	}
}

// layout sizes the pane to the space left by the fixed rows.
func (m *Model) layout() {
	fixed := 1 + 1 + 2 + 1 + 1 // header, progress, tabs, search, status
	if ctrls := m.controlsView(); ctrls != "" {
		fixed += lipgloss.Height(ctrls)
	}
	m.pane.SetSize(m.width, m.height-fixed)
}

// refresh recomputes the active tab's content.
func (m *Model) refresh() {
	var content string
	switch m.ActiveTab() {
	case TabOverview:
		content = m.overviewContent()
	case TabDecade:
		m.picker.SetDecades(explore.AvailableDecades(m.scope.Dataset(), m.slider.Value()))
		content = m.decadeContent()
	case TabConference:
		content = m.conferenceContent()
	case TabAuthorship:
		content = m.authorshipContent()
	}
	m.pane.SetTitle(m.ActiveTab().String())
	m.pane.SetContent(content)
	m.updateStatus()
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(m.header.View() + "\n")
	b.WriteString(m.progress.View() + "\n")
	b.WriteString(m.tabs.View() + "\n")

	if m.searching || m.query != "" {
		b.WriteString(m.search.View() + "\n")
	} else {
		b.WriteString(styles.HelpStyle.Render("Press / to search schools") + "\n")
	}

	if ctrls := m.controlsView(); ctrls != "" {
		b.WriteString(ctrls + "\n")
	}

	b.WriteString(m.pane.View() + "\n")
	b.WriteString(m.statusBar.View())

	view := b.String()
	if m.helpOverlay.IsVisible() {
		view = m.renderOverlay(view, m.helpOverlay.View())
	}
	return view
}

// renderOverlay draws an overlay centered in the window in place of base.
func (m *Model) renderOverlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

// ActiveTab returns the selected tab.
func (m *Model) ActiveTab() Tab {
	return Tab(m.tabs.Active())
}

// SessionID returns the id tagging this session's log records.
func (m *Model) SessionID() string {
	return m.sessionID
}

// Query returns the active school search.
func (m *Model) Query() string {
	return m.query
}

// Matched returns how many songs the search keeps.
func (m *Model) Matched() int {
	return m.matched
}

// MinDecade returns the decade slider's value.
func (m *Model) MinDecade() int {
	return m.slider.Value()
}

// SelectedDecade returns the decade whose context is shown, if one was picked.
func (m *Model) SelectedDecade() (int, bool) {
	return m.picker.Selected()
}

// Kind returns the authorship comparison shown.
func (m *Model) Kind() explore.AuthorshipKind {
	return m.kind
}

// Content returns the text of the active tab's pane.
func (m *Model) Content() string {
	return m.pane.Content()
}

// Err returns the last error shown, if any.
func (m *Model) Err() string {
	return m.lastError
}

// SelectedSeries returns the checked decade series.
func (m *Model) SelectedSeries() []dataset.Trope {
	return checkedTropes(m.series)
}

// SelectedDimensions returns the checked conference profile dimensions.
func (m *Model) SelectedDimensions() []dataset.Trope {
	return checkedTropes(m.dimensions)
}

// SelectedConferences returns the checked conferences. The slice is never
// nil, so an empty selection is not mistaken for the default one.
func (m *Model) SelectedConferences() []string {
	return components.CheckedIDs(m.conferences)
}

func checkedTropes(boxes []*components.Checkbox) []dataset.Trope {
	out := make([]dataset.Trope, 0, len(boxes))
	for _, id := range components.CheckedIDs(boxes) {
		if t, ok := dataset.ParseTrope(id); ok {
			out = append(out, t)
		}
	}
	return out
}
