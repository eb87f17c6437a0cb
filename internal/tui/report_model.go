package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tabletop/internal/db"
	"github.com/balkashynov/tabletop/internal/parser"
	"github.com/balkashynov/tabletop/internal/report"
)

// Screen is what the report TUI is currently showing
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenRange
	ScreenResult
)

type menuItem struct {
	key   string
	label string
}

var menuItems = []menuItem{
	{report.ChoiceSessions, "All sessions"},
	{report.ChoiceTopGames, "Top 3 games by hours played"},
	{report.ChoiceMembers, "Members by hours played"},
	{report.ChoiceStats, "Statistics for a period"},
	{report.ChoiceExit, "Exit"},
}

// reportMsg carries a finished report back into Update
type reportMsg struct {
	title string
	body  string
	err   error
}

// ReportModel represents the TUI model for browsing reports
type ReportModel struct {
	width  int
	height int

	q           report.Queryer
	includeIdle bool
	now         func() time.Time

	// UI state
	screen   Screen
	selected int

	// Date range inputs (from, to)
	inputs     []textinput.Model
	focusInput int
	notice     string // ignored date input

	// Last report
	title string
	body  string
	err   error
}

// NewReportModel creates a new report TUI model
func NewReportModel(q report.Queryer, includeIdle bool) ReportModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 30
		inputs[i].CharLimit = 20
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		inputs[i].Placeholder = "yyyy-mm-dd (Enter for no limit)"
	}
	inputs[0].Prompt = "From: "
	inputs[1].Prompt = "To:   "

	return ReportModel{
		q:           q,
		includeIdle: includeIdle,
		now:         time.Now,
		screen:      ScreenMenu,
		inputs:      inputs,
	}
}

// Init initializes the model
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reportMsg:
		m.screen = ScreenResult
		m.title = msg.title
		m.body = msg.body
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case ScreenRange:
			return m.handleRangeKeys(msg)
		case ScreenResult:
			return m.handleResultKeys(msg)
		default:
			return m.handleMenuKeys(msg)
		}
	}

	return m, nil
}

// handleMenuKeys handles navigation on the main menu
func (m ReportModel) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.selected < len(menuItems)-1 {
			m.selected++
		}
		return m, nil

	case "enter":
		return m.choose(menuItems[m.selected].key)

	default:
		// Digit shortcuts
		for i, item := range menuItems {
			if msg.String() == item.key {
				m.selected = i
				return m.choose(item.key)
			}
		}
	}
	return m, nil
}

// choose runs the report for a menu key
func (m ReportModel) choose(key string) (tea.Model, tea.Cmd) {
	switch key {
	case report.ChoiceExit:
		return m, tea.Quit
	case report.ChoiceStats:
		m.screen = ScreenRange
		m.notice = ""
		m.focusInput = 0
		for i := range m.inputs {
			m.inputs[i].SetValue("")
			m.inputs[i].Blur()
		}
		return m, tea.Batch(m.inputs[0].Focus(), textinput.Blink)
	default:
		return m, m.runReport(key)
	}
}

// handleRangeKeys handles the date range prompts
func (m ReportModel) handleRangeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = ScreenMenu
		return m, nil

	case "tab", "shift+tab", "up", "down":
		return m.toggleInput(), textinput.Blink

	case "enter":
		if m.focusInput == 0 {
			return m.toggleInput(), textinput.Blink
		}
		r, notice := m.parseRange()
		m.notice = notice
		return m, m.runStats(r)
	}

	var cmd tea.Cmd
	m.inputs[m.focusInput], cmd = m.inputs[m.focusInput].Update(msg)
	return m, cmd
}

// handleResultKeys returns to the menu from a report
func (m ReportModel) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "enter", "backspace", "m":
		m.screen = ScreenMenu
	}
	return m, nil
}

func (m ReportModel) toggleInput() ReportModel {
	m.inputs[m.focusInput].Blur()
	m.focusInput = (m.focusInput + 1) % len(m.inputs)
	m.inputs[m.focusInput].Focus()
	return m
}

// parseRange reads both inputs. Invalid bounds are dropped and reported in the notice.
func (m ReportModel) parseRange() (db.DateRange, string) {
	var r db.DateRange
	var ignored []string

	bounds := []**time.Time{&r.From, &r.To}
	for i, input := range m.inputs {
		d, err := parser.ParseDateBound(input.Value(), m.now())
		if errors.Is(err, parser.ErrInvalidDate) {
			ignored = append(ignored, fmt.Sprintf("%q", input.Value()))
			continue
		}
		*bounds[i] = d
	}

	if len(ignored) == 0 {
		return r, ""
	}
	return r, "Ignored invalid date " + strings.Join(ignored, " and ")
}

// runReport queries the store for a menu report
func (m ReportModel) runReport(key string) tea.Cmd {
	q, includeIdle := m.q, m.includeIdle
	return func() tea.Msg {
		var b strings.Builder
		switch key {
		case report.ChoiceSessions:
			rows, err := q.ListSessions()
			if err != nil {
				return reportMsg{title: "All sessions", err: err}
			}
			report.WriteSessions(&b, rows)
			return reportMsg{title: fmt.Sprintf("All sessions (%d)", len(rows)), body: b.String()}

		case report.ChoiceTopGames:
			rows, err := q.TopGamesByHours(db.TopGamesLimit)
			if err != nil {
				return reportMsg{title: "Top games", err: err}
			}
			report.WriteTopGames(&b, rows)
			return reportMsg{title: "Top games by hours", body: b.String()}

		default:
			rows, err := q.MembersByHours(includeIdle)
			if err != nil {
				return reportMsg{title: "Members", err: err}
			}
			report.WriteMembers(&b, rows)
			return reportMsg{title: "Members by hours", body: b.String()}
		}
	}
}

// runStats queries the statistics for a date range
func (m ReportModel) runStats(r db.DateRange) tea.Cmd {
	q := m.q
	return func() tea.Msg {
		stats, err := q.Statistics(r)
		if err != nil {
			return reportMsg{title: "Statistics", err: err}
		}
		var b strings.Builder
		report.WriteStats(&b, r, stats)
		return reportMsg{title: "Statistics", body: b.String()}
	}
}

// View renders the TUI
func (m ReportModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content string
	switch m.screen {
	case ScreenRange:
		content = m.renderRange()
	case ScreenResult:
		content = m.renderResult()
	default:
		content = m.renderMenu()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"", // Small top margin to show border
		content,
		"",
		m.renderHelpBar(),
	)
}

// renderMenu renders the main menu
func (m ReportModel) renderMenu() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(headerStyle.Render("🎲 Board game reports"))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := fmt.Sprintf("%s. %s", item.key, item.label)
		if i == m.selected {
			selectedStyle := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorAccentMain)).
				Bold(true).
				Padding(0, 1)
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(" " + lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(line))
		}
		b.WriteString("\n")
	}

	return m.panel(b.String())
}

// renderRange renders the date range form
func (m ReportModel) renderRange() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText))
	b.WriteString(titleStyle.Render("📅 Statistics for a period"))
	b.WriteString("\n\n")

	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText)).
		Italic(true)
	b.WriteString("\n")
	b.WriteString(hint.Render("Also accepted: dd/mm/yyyy, today, yesterday, X days ago"))

	return m.panel(b.String())
}

// renderResult renders the last report
func (m ReportModel) renderResult() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if m.notice != "" && m.err == nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(m.notice))
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("Error: " + m.err.Error()))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Render(strings.TrimRight(m.body, "\n")))
	}

	return m.panel(b.String())
}

// panel wraps content in the outer border
func (m ReportModel) panel(content string) string {
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(width).
		Render(content)
}

// renderHelpBar renders the help bar with hotkey hints
func (m ReportModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	var helpText string
	switch m.screen {
	case ScreenRange:
		helpText = "tab switch field · enter next/run · esc back"
	case ScreenResult:
		helpText = "enter/esc back to menu · q quit"
	default:
		helpText = "↑/↓ nav · enter select · 1-4 run report · 0/q/esc quit"
	}
	return helpStyle.Render(helpText)
}
