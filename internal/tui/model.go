// Package tui provides the Bubble Tea decoding practice interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/codeclub/internal/generator"
	"github.com/verte-zerg/codeclub/internal/model"
)

// SessionStore persists finished puzzles.
type SessionStore interface {
	InsertPuzzleSession(ctx context.Context, session model.PuzzleSession) (int64, error)
	ListPuzzleSessions(ctx context.Context, filter model.HistoryFilter) ([]model.PuzzleSession, error)
}

type keyMap struct {
	Hint key.Binding
	Skip key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hint, k.Skip, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newKeyMap(hints bool) keyMap {
	k := keyMap{
		Hint: key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "show key")),
		Skip: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new puzzle")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
	k.Hint.SetEnabled(hints)
	return k
}

// Model implements the Bubble Tea puzzle UI.
type Model struct {
	config   model.PuzzleConfig
	store    SessionStore
	gen      *generator.Generator
	keywords []string
	logger   *zap.Logger
	keys     keyMap
	help     help.Model

	width  int
	height int

	puzzle      model.Puzzle
	targetRunes []rune
	inputRunes  []rune
	hintShown   bool
	errMsg      string

	started   bool
	startedAt time.Time
	correct   int
	incorrect int

	lastAcc float64
	hasLast bool

	solved       int
	allCorrect   int
	allIncorrect int
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Underline(true)
	cipherStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB3D5"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// NewModel constructs a puzzle TUI model and deals the first puzzle.
func NewModel(cfg model.PuzzleConfig, st SessionStore, gen *generator.Generator, keywords []string, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		config:   cfg,
		store:    st,
		gen:      gen,
		keywords: keywords,
		logger:   logger,
		keys:     newKeyMap(cfg.Hints),
		help:     help.New(),
	}
	if err := m.nextPuzzle(); err != nil {
		return nil, err
	}
	m.loadFooterStats()
	return m, nil
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
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Hint):
			m.hintShown = true
			return m, nil
		case key.Matches(msg, m.keys.Skip):
			m.resetPuzzle()
			return m, nil
		}
		switch msg.Type {
		case tea.KeyBackspace, tea.KeyDelete:
			m.handleBackspace()
		case tea.KeySpace:
			m.handleRunes([]rune{' '})
		case tea.KeyRunes:
			m.handleRunes(msg.Runes)
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.targetRunes) == 0 {
		return errorStyle.Render(m.errMsg)
	}
	cursorIndex := -1
	if len(m.inputRunes) < len(m.targetRunes) {
		cursorIndex = len(m.inputRunes)
	}
	answer := buildStyledRunes(m.targetRunes, m.inputRunes, cursorIndex)
	if m.width == 0 || m.height == 0 {
		return m.renderHeader() + "\n" + cipherStyle.Render(m.puzzle.Ciphertext) + "\n\n" + renderStyledRunes(answer)
	}

	contentWidth := max(int(float64(m.width)*0.70), 1)
	block := lipgloss.NewStyle().Width(contentWidth)
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		block.Render(cipherStyle.Render(m.puzzle.Ciphertext)),
		"",
		block.Render(wrapStyledRunes(answer, contentWidth)),
	)

	footer := m.renderFooter()
	if m.height < 4 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 2
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	helpLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.help.View(m.keys))
	return body + "\n" + footerLine + "\n" + helpLine
}

func (m *Model) renderHeader() string {
	header := titleStyle.Render("Cipher: " + m.puzzle.Cipher)
	if m.hintShown && m.puzzle.Key != "" {
		header += footerStyle.Render("  Key: " + m.puzzle.Key)
	}
	return header
}

func (m *Model) handleBackspace() {
	if len(m.inputRunes) == 0 {
		return
	}
	m.inputRunes = m.inputRunes[:len(m.inputRunes)-1]
}

func (m *Model) handleRunes(runes []rune) {
	for _, r := range runes {
		if len(m.inputRunes) >= len(m.targetRunes) {
			return
		}
		if !m.started {
			m.started = true
			m.startedAt = time.Now()
		}
		expected := m.targetRunes[len(m.inputRunes)]
		m.inputRunes = append(m.inputRunes, r)
		m.updateStats(expected, r)
		if len(m.inputRunes) == len(m.targetRunes) {
			m.finishPuzzle()
			m.resetPuzzle()
		}
	}
}

func (m *Model) updateStats(expected, typed rune) {
	if !hidden(expected) {
		return
	}
	if sameRune(expected, typed) {
		m.correct++
		return
	}
	m.incorrect++
}

func (m *Model) loadFooterStats() {
	if m.store == nil {
		return
	}
	sessions, err := m.store.ListPuzzleSessions(context.Background(), model.HistoryFilter{})
	if err != nil {
		m.logger.Warn("failed to load puzzle history", zap.Error(err))
		return
	}
	if len(sessions) == 0 {
		return
	}
	m.lastAcc = sessions[len(sessions)-1].Accuracy()
	m.hasLast = true
	m.solved = len(sessions)
	for _, s := range sessions {
		m.allCorrect += s.Correct
		m.allIncorrect += s.Incorrect
	}
}

func (m *Model) allTimeAccuracy() float64 {
	return model.PuzzleSession{Correct: m.allCorrect, Incorrect: m.allIncorrect}.Accuracy()
}

func (m *Model) renderFooter() string {
	progress := 0
	if len(m.targetRunes) > 0 {
		progress = int(float64(len(m.inputRunes)) / float64(len(m.targetRunes)) * 100)
	}
	segments := []string{fmt.Sprintf("Progress %d%%", progress)}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f%%", m.lastAcc*100))
	}
	segments = append(segments,
		fmt.Sprintf("Solved %d", m.solved),
		fmt.Sprintf("All-time %.1f%%", m.allTimeAccuracy()*100),
	)
	footer := footerStyle.Render(strings.Join(segments, "  "))
	if m.errMsg != "" {
		footer += "  " + errorStyle.Render(m.errMsg)
	}
	return footer
}

func (m *Model) nextPuzzle() error {
	p, err := m.gen.Puzzle(m.keywords, m.config.Ciphers)
	if err != nil {
		return err
	}
	m.puzzle = p
	m.targetRunes = []rune(p.Plaintext)
	m.inputRunes = nil
	m.hintShown = false
	m.started = false
	m.startedAt = time.Time{}
	m.correct = 0
	m.incorrect = 0
	return nil
}

func (m *Model) resetPuzzle() {
	if err := m.nextPuzzle(); err != nil {
		m.errMsg = err.Error()
		m.logger.Warn("failed to generate puzzle", zap.Error(err))
	}
}

func (m *Model) finishPuzzle() {
	if !m.started {
		return
	}
	endedAt := time.Now()
	session := model.PuzzleSession{
		StartedAt:  m.startedAt,
		EndedAt:    endedAt,
		Cipher:     m.puzzle.Cipher,
		Key:        m.puzzle.Key,
		Plaintext:  m.puzzle.Plaintext,
		Correct:    m.correct,
		Incorrect:  m.incorrect,
		HintUsed:   m.hintShown,
		DurationMs: endedAt.Sub(m.startedAt).Milliseconds(),
	}
	if m.store != nil {
		if _, err := m.store.InsertPuzzleSession(context.Background(), session); err != nil {
			m.errMsg = "failed to save session"
			m.logger.Warn("failed to save puzzle session", zap.Error(err))
		}
	}
	m.lastAcc = session.Accuracy()
	m.hasLast = true
	m.solved++
	m.allCorrect += session.Correct
	m.allIncorrect += session.Incorrect
}
