package historyui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/codeclub/internal/model"
)

type fakeStore struct {
	sessions []model.PuzzleSession
	runs     []model.CrackRun
	attempts map[string][]model.CrackAttempt
	filters  []model.HistoryFilter
}

func (s *fakeStore) ListPuzzleSessions(_ context.Context, f model.HistoryFilter) ([]model.PuzzleSession, error) {
	s.filters = append(s.filters, f)
	var out []model.PuzzleSession
	for _, ps := range s.sessions {
		if f.Cipher == "" || ps.Cipher == f.Cipher {
			out = append(out, ps)
		}
	}
	return out, nil
}

func (s *fakeStore) ListCrackRuns(context.Context, int) ([]model.CrackRun, error) {
	return s.runs, nil
}

func (s *fakeStore) ListCrackAttempts(_ context.Context, id string) ([]model.CrackAttempt, error) {
	return s.attempts[id], nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: []model.PuzzleSession{
			{Cipher: "caesar", Correct: 20, DurationMs: 60000},
			{Cipher: "keyword", Correct: 10, Incorrect: 10, DurationMs: 60000},
		},
		runs: []model.CrackRun{{
			ID: "run-1", CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			Cipher: "keyword", Ciphertext: "DTIIL WLOIR", BestKey: "SECRET", BestScore: 104, Verdict: "confident crack",
		}},
		attempts: map[string][]model.CrackAttempt{
			"run-1": {{Rank: 1, Keyword: "SECRET", Result: "HELLO WORLD", Score: 104}},
		},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHistoryViewShowsPuzzleSummary(t *testing.T) {
	m := NewModel(newFakeStore(), model.HistoryFilter{}, 3)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	if !strings.Contains(view, "Puzzles: 2") {
		t.Fatalf("expected puzzle summary, got:\n%s", view)
	}
	if !strings.Contains(view, "cipher=any") {
		t.Fatalf("expected filter summary")
	}
}

func TestHistoryCipherFilter(t *testing.T) {
	st := newFakeStore()
	m := NewModel(st, model.HistoryFilter{}, 3)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(keyRunes("/"))
	if !m.filterMode {
		t.Fatalf("expected filter mode")
	}
	m.Update(keyRunes("Caesar"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode || m.filter.Cipher != "caesar" {
		t.Fatalf("filter not applied: %+v", m.filter)
	}
	if got := st.filters[len(st.filters)-1].Cipher; got != "caesar" {
		t.Fatalf("store queried with cipher %q", got)
	}
	if !strings.Contains(m.View(), "Puzzles: 1") {
		t.Fatalf("expected filtered summary")
	}
}

func TestHistoryCrackRunDetail(t *testing.T) {
	m := NewModel(newFakeStore(), model.HistoryFilter{}, 3)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabCrackRuns {
		t.Fatalf("expected crack runs tab")
	}
	if !strings.Contains(m.View(), "SECRET") {
		t.Fatalf("expected run row in table")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.showDetail {
		t.Fatalf("expected detail view")
	}
	if !strings.Contains(m.View(), "HELLO WORLD") {
		t.Fatalf("expected attempts in detail view:\n%s", m.View())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.showDetail {
		t.Fatalf("esc should close detail")
	}
}
