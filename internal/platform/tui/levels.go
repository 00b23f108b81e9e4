package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	tiles "github.com/vovakirdan/linetiles/internal/games/linetiles/core"
	"github.com/vovakirdan/linetiles/internal/games/linetiles/levels"
)

// Level browser layout constants
const (
	minWidthForPreview = 80 // Minimum width to show the layout preview
	previewMinWidth    = 16 // Minimum width of the preview panel
)

// BrowserKeyMap defines the key bindings for the level browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// levelRow is one level with the numbers shown in the table.
type levelRow struct {
	level  levels.Level
	layout []string // solved layout, top row first
	groups int
	closed int
}

// LevelBrowserModel is the Bubble Tea model for the level browser.
type LevelBrowserModel struct {
	rows        []levelRow
	loadErr     error
	table       table.Model
	help        help.Model
	keys        BrowserKeyMap
	width       int
	height      int
	selected    *levels.Level
	quitting    bool
	goingBack   bool
	showPreview bool
}

// NewLevelBrowserModel loads every level from the loader and lists them.
func NewLevelBrowserModel(loader *levels.Loader, width, height int) LevelBrowserModel {
	h := help.New()
	h.Width = width

	m := LevelBrowserModel{
		keys:        DefaultBrowserKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}
	m.rows, m.loadErr = loadRows(loader)
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// loadRows loads the levels and partitions their solved layouts.
func loadRows(loader *levels.Loader) ([]levelRow, error) {
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}

	rows := make([]levelRow, 0, len(lvls))
	for _, lvl := range lvls {
		b, err := lvl.Solved()
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", lvl.ID, err)
		}
		pt, err := tiles.Recompute(b)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", lvl.ID, err)
		}
		rows = append(rows, levelRow{
			level:  lvl,
			layout: b.Layout(),
			groups: len(pt.Groups),
			closed: pt.ClosedCount(),
		})
	}
	return rows, nil
}

// createTable creates a new table with appropriate columns.
func (m *LevelBrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Name", Width: 16},
		{Title: "Size", Width: 6},
		{Title: "Shifts", Width: 6},
		{Title: "Groups", Width: 6},
		{Title: "Closed", Width: 6},
	}

	tableWidth := m.width - 4
	if m.showPreview {
		tableWidth -= m.previewWidth() + 3
	}
	// Give spare width to the name column.
	fixed := 0
	for _, c := range columns {
		fixed += c.Width + 2
	}
	if extra := tableWidth - fixed; extra > 0 {
		columns[1].Width += min(extra, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)
	t.SetStyles(tableStyles())
	return t
}

// previewWidth returns the width of the preview panel content.
func (m LevelBrowserModel) previewWidth() int {
	w := previewMinWidth
	for _, r := range m.rows {
		w = max(w, r.level.Width+2)
	}
	return w
}

// updateTableRows fills the table from the loaded levels.
func (m *LevelBrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		rows[i] = table.Row{
			r.level.ID,
			r.level.Name,
			fmt.Sprintf("%dx%d", r.level.Width, r.level.Height),
			fmt.Sprintf("%d", len(r.level.Scramble)),
			fmt.Sprintf("%d", r.groups),
			fmt.Sprintf("%d", r.closed),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the level browser.
func (m LevelBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the level browser.
func (m LevelBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if r, ok := m.current(); ok {
				lvl := r.level
				m.selected = &lvl
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// current returns the highlighted level.
func (m LevelBrowserModel) current() (levelRow, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return levelRow{}, false
	}
	return m.rows[i], true
}

// View renders the level browser.
func (m LevelBrowserModel) View() string {
	if m.quitting || m.goingBack || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(centerText(theme.MenuTitle.Render(fmt.Sprintf("LEVELS (%d)", len(m.rows))), m.width))
	b.WriteString("\n\n")

	content := m.renderTableContent()
	if m.showPreview && len(m.rows) > 0 {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", m.renderPreview())
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or the empty/error message.
func (m LevelBrowserModel) renderTableContent() string {
	switch {
	case m.loadErr != nil:
		return theme.Panel.Render(theme.ErrorText.Render("Cannot load levels:\n" + m.loadErr.Error()))
	case len(m.rows) == 0:
		return theme.Panel.Render(theme.Empty.Render("No levels found."))
	}
	return theme.Panel.Render(m.table.View())
}

// renderPreview draws the solved layout of the highlighted level.
func (m LevelBrowserModel) renderPreview() string {
	r, ok := m.current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.MenuItemActive.Render(r.level.Name))
	b.WriteString("\n\n")
	for _, line := range r.layout {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	status := fmt.Sprintf("%d/%d closed", r.closed, r.groups)
	if r.closed == r.groups {
		status = theme.ClosedMark.Render(status)
	}
	b.WriteString(status)

	return theme.Panel.Width(m.previewWidth()).Render(b.String())
}

// Selected returns the chosen level, or nil if none was chosen.
func (m LevelBrowserModel) Selected() *levels.Level {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LevelBrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LevelBrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelBrowser runs the level browser. It returns the chosen level, or
// nil when the user went back or quit; goBack tells the two apart.
func RunLevelBrowser(loader *levels.Loader, width, height int) (selected *levels.Level, goBack bool, err error) {
	p := tea.NewProgram(
		NewLevelBrowserModel(loader, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(LevelBrowserModel)
	if !ok {
		return nil, false, nil
	}
	return m.Selected(), m.IsGoingBack(), nil
}
