package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/tabletop/internal/db"
)

type stubQueryer struct {
	games    []db.GameHours
	members  []db.MemberHours
	sessions []db.SessionRow
	stats    db.Stats
	err      error
	gotRange db.DateRange
	gotIdle  bool
}

func (s *stubQueryer) ListSessions() ([]db.SessionRow, error) { return s.sessions, s.err }

func (s *stubQueryer) TopGamesByHours(int) ([]db.GameHours, error) { return s.games, s.err }

func (s *stubQueryer) MembersByHours(includeIdle bool) ([]db.MemberHours, error) {
	s.gotIdle = includeIdle
	return s.members, s.err
}

func (s *stubQueryer) Statistics(r db.DateRange) (db.Stats, error) {
	s.gotRange = r
	return s.stats, s.err
}

func newTestModel(q *stubQueryer) ReportModel {
	m := NewReportModel(q, false)
	m.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(ReportModel)
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the model and runs any resulting report command
func send(t *testing.T, m ReportModel, msg tea.Msg) ReportModel {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(ReportModel)
	if cmd != nil {
		if res, ok := cmd().(reportMsg); ok {
			updated, _ = m.Update(res)
			m = updated.(ReportModel)
		}
	}
	return m
}

func TestReportModelTopGames(t *testing.T) {
	q := &stubQueryer{games: []db.GameHours{{Title: "Catan", TotalMinutes: 180, Hours: 3}}}
	m := send(t, newTestModel(q), keys("2"))

	if m.screen != ScreenResult {
		t.Fatalf("expected result screen, got %v", m.screen)
	}
	view := m.View()
	if !strings.Contains(view, "Catan") || !strings.Contains(view, "3.00") {
		t.Fatalf("expected Catan in view:\n%s", view)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != ScreenMenu {
		t.Fatalf("expected menu after esc, got %v", m.screen)
	}
}

func TestReportModelMenuNavigation(t *testing.T) {
	q := &stubQueryer{members: []db.MemberHours{{FullName: "Dave Brown", TotalMinutes: 120, Hours: 2}}}
	m := newTestModel(q)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 2 {
		t.Fatalf("expected third item selected, got %d", m.selected)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "Dave Brown") {
		t.Fatalf("expected members report:\n%s", m.View())
	}
}

func TestReportModelStatisticsRange(t *testing.T) {
	q := &stubQueryer{stats: db.Stats{Count: 2, TotalMinutes: 150}}
	m := send(t, newTestModel(q), keys("4"))
	if m.screen != ScreenRange {
		t.Fatalf("expected range screen, got %v", m.screen)
	}

	m = send(t, m, keys("2026-10-01"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // to the "to" field
	m = send(t, m, keys("bogus"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if q.gotRange.From == nil || !q.gotRange.From.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected from bound: %v", q.gotRange.From)
	}
	if q.gotRange.To != nil {
		t.Fatalf("expected invalid to bound to be dropped, got %v", q.gotRange.To)
	}

	view := m.View()
	if !strings.Contains(view, "Ignored invalid date") {
		t.Fatalf("expected notice in view:\n%s", view)
	}
	if !strings.Contains(view, "150 minutes") {
		t.Fatalf("expected totals in view:\n%s", view)
	}
}

func TestReportModelShowsQueryError(t *testing.T) {
	q := &stubQueryer{err: errors.New("no such table: sessions")}
	m := send(t, newTestModel(q), keys("1"))

	if !strings.Contains(m.View(), "Error: no such table: sessions") {
		t.Fatalf("expected error in view:\n%s", m.View())
	}
}

func TestReportModelQuit(t *testing.T) {
	m := newTestModel(&stubQueryer{})
	_, cmd := m.Update(keys("0"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
