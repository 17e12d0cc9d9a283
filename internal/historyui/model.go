// Package historyui provides the Bubble Tea history browser.
package historyui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/codeclub/internal/crack"
	"github.com/verte-zerg/codeclub/internal/model"
	"github.com/verte-zerg/codeclub/internal/report"
)

const (
	tabPuzzles = iota
	tabCrackRuns
)

const runLimit = 200

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// HistoryStore is the read side of the history database.
type HistoryStore interface {
	ListPuzzleSessions(ctx context.Context, filter model.HistoryFilter) ([]model.PuzzleSession, error)
	ListCrackRuns(ctx context.Context, limit int) ([]model.CrackRun, error)
	ListCrackAttempts(ctx context.Context, runID string) ([]model.CrackAttempt, error)
}

// Model implements the Bubble Tea history UI.
type Model struct {
	store  HistoryStore
	filter model.HistoryFilter
	window int

	tabs      []string
	activeTab int
	puzzles   viewport.Model
	detail    viewport.Model
	runTable  table.Model
	runs      []model.CrackRun

	showDetail  bool
	filterMode  bool
	filterInput textinput.Model
	errMsg      string

	width  int
	height int
}

// NewModel constructs a history UI model.
func NewModel(st HistoryStore, filter model.HistoryFilter, window int) *Model {
	input := textinput.New()
	input.Prompt = "Cipher: "
	input.Placeholder = "any"
	m := &Model{
		store:       st,
		filter:      filter,
		window:      window,
		tabs:        []string{"Puzzles", "Crack Runs"},
		puzzles:     viewport.New(0, 0),
		detail:      viewport.New(0, 0),
		runTable:    newRunTable(),
		filterInput: input,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderPuzzles()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h", "right", "l", "tab":
			m.activeTab = (m.activeTab + 1) % len(m.tabs)
			m.showDetail = false
			m.syncFocus()
			return m, tea.ClearScreen
		case "/":
			if m.activeTab == tabPuzzles {
				m.filterMode = true
				m.filterInput.SetValue(m.filter.Cipher)
				return m, m.filterInput.Focus()
			}
			return m, nil
		case "esc":
			m.showDetail = false
			m.syncFocus()
			return m, nil
		case "enter":
			if m.activeTab == tabCrackRuns && !m.showDetail {
				m.openDetail()
			}
			return m, nil
		}
		var cmd tea.Cmd
		switch {
		case m.activeTab == tabPuzzles:
			m.puzzles, cmd = m.puzzles.Update(msg)
		case m.showDetail:
			m.detail, cmd = m.detail.Update(msg)
		default:
			m.runTable, cmd = m.runTable.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderTabs() + "\n" + headerStyle.Render(m.renderFilterSummary())
	bodyHeight := max(m.height-lipgloss.Height(header)-1, 1)
	var body string
	switch {
	case m.filterMode:
		body = m.filterInput.View()
	case m.activeTab == tabPuzzles:
		body = m.puzzles.View()
	case m.showDetail:
		body = m.detail.View()
	case len(m.runs) == 0:
		body = "No crack runs found."
	default:
		body = m.runTable.View()
	}
	return strings.Join([]string{header, fitLines(body, m.width, bodyHeight), m.renderFooter()}, "\n")
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.filterMode = false
		m.filterInput.Blur()
		m.filter.Cipher = strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	m.errMsg = ""
	ctx := context.Background()
	runs, err := m.store.ListCrackRuns(ctx, runLimit)
	if err != nil {
		m.errMsg = err.Error()
	}
	m.runs = runs
	m.runTable.SetRows(runRows(runs))
	m.renderPuzzles()
	m.syncFocus()
}

func (m *Model) renderPuzzles() {
	sessions, err := m.store.ListPuzzleSessions(context.Background(), m.filter)
	if err != nil {
		m.errMsg = err.Error()
		m.puzzles.SetContent("Failed to load puzzle history.")
		return
	}
	var buf bytes.Buffer
	if err := report.RenderPuzzleSummary(&buf, sessions, m.window); err != nil {
		m.errMsg = err.Error()
	}
	m.puzzles.SetContent(strings.TrimRight(buf.String(), "\n"))
}

func (m *Model) openDetail() {
	row := m.runTable.Cursor()
	if row < 0 || row >= len(m.runs) {
		return
	}
	run := m.runs[row]
	stored, err := m.store.ListCrackAttempts(context.Background(), run.ID)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	attempts := make([]crack.Attempt, len(stored))
	for i, at := range stored {
		attempts[i] = crack.Attempt{Keyword: at.Keyword, Result: at.Result, Score: at.Score}
	}
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Run %s (%s)\nCiphertext: %s\n\n", run.ID, run.Cipher, run.Ciphertext))
	if err := report.RenderAttempts(&buf, attempts, 0); err != nil {
		m.errMsg = err.Error()
	}
	m.detail.SetContent(strings.TrimRight(buf.String(), "\n"))
	m.detail.GotoTop()
	m.showDetail = true
	m.syncFocus()
}

func (m *Model) syncFocus() {
	if m.activeTab == tabCrackRuns && !m.showDetail {
		m.runTable.Focus()
		return
	}
	m.runTable.Blur()
}

func (m *Model) updateLayout() {
	bodyHeight := max(m.height-4, 1)
	m.puzzles.Width = m.width
	m.puzzles.Height = bodyHeight
	m.detail.Width = m.width
	m.detail.Height = bodyHeight
	m.runTable.SetWidth(m.width)
	m.runTable.SetHeight(bodyHeight)
	m.filterInput.Width = max(10, m.width-lipgloss.Width(m.filterInput.Prompt)-2)
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderFilterSummary() string {
	cipher := m.filter.Cipher
	if cipher == "" {
		cipher = "any"
	}
	since := "any"
	if m.filter.Since != nil {
		since = m.filter.Since.Format("2006-01-02")
	}
	last := "all"
	if m.filter.Last > 0 {
		last = strconv.Itoa(m.filter.Last)
	}
	return fmt.Sprintf("Filter: cipher=%s  since=%s  last=%s", cipher, since, last)
}

func (m *Model) renderFooter() string {
	help := "Tabs: left/right  Scroll: up/down  Filter: /  Quit: q"
	switch {
	case m.filterMode:
		help = "enter: apply  esc: cancel"
	case m.activeTab == tabCrackRuns && m.showDetail:
		help = "Back: esc  Scroll: up/down  Quit: q"
	case m.activeTab == tabCrackRuns:
		help = "Tabs: left/right  Attempts: enter  Quit: q"
	}
	footer := headerStyle.Render(help)
	if m.errMsg != "" {
		footer += "  " + errorStyle.Render(m.errMsg)
	}
	return footer
}

func newRunTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Cipher", Width: 9},
		{Title: "Key", Width: 14},
		{Title: "Score", Width: 6},
		{Title: "Verdict", Width: 18},
	}
	t := table.New(table.WithColumns(columns), table.WithHeight(1))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func runRows(runs []model.CrackRun) []table.Row {
	rows := make([]table.Row, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, table.Row{
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			run.Cipher,
			run.BestKey,
			strconv.Itoa(run.BestScore),
			run.Verdict,
		})
	}
	return rows
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
