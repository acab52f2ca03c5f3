package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(newTestStore(t), "runner", "Endless Runner", 80, 24)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Endless Runner") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Error("empty store should show the placeholder")
	}
	if !strings.Contains(view, "no runs recorded") {
		t.Error("empty store should report no runs")
	}
}

func TestScoreboardRows(t *testing.T) {
	store := newTestStore(t)
	for _, e := range []struct {
		player string
		score  int
	}{{"bob", 3}, {"", 9}, {"alice", 5}} {
		if _, err := store.SaveScore("runner", e.player, e.score); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", "eve", 100); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	m := NewScoreboardModel(store, "runner", "Endless Runner", 80, 24)
	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	want := [][2]string{{"-", "9"}, {"alice", "5"}, {"bob", "3"}}
	for i, w := range want {
		if rows[i][0] != "#"+string(rune('1'+i)) {
			t.Errorf("row %d rank = %q", i, rows[i][0])
		}
		if rows[i][1] != w[0] || rows[i][2] != w[1] {
			t.Errorf("row %d = %v, want player %q score %q", i, rows[i], w[0], w[1])
		}
	}

	if !strings.Contains(m.statsLine(), "3 runs  best 9") {
		t.Errorf("statsLine = %q", m.statsLine())
	}
}

func TestScoreboardNilStore(t *testing.T) {
	m := NewScoreboardModel(nil, "runner", "Endless Runner", 80, 24)
	if len(m.table.Rows()) != 0 {
		t.Error("nil store should produce no rows")
	}
	if m.View() == "" {
		t.Error("view should render without a store")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "runner", "Endless Runner", 80, 24)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestScoreboardResize(t *testing.T) {
	m := NewScoreboardModel(nil, "runner", "Endless Runner", 80, 24)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 5})
	sb := next.(ScoreboardModel)
	if sb.width != 50 || sb.height != 5 {
		t.Errorf("size = %dx%d, want 50x5", sb.width, sb.height)
	}
	if sb.table.Height() != minTableRows {
		t.Errorf("table height = %d, want %d rows", sb.table.Height(), minTableRows)
	}
}

func TestScoreboardTableHeightExcludesHeader(t *testing.T) {
	m := NewScoreboardModel(nil, "runner", "Endless Runner", 80, 24)
	if got, want := m.table.Height(), 24-reservedLines; got != want {
		t.Errorf("table height = %d, want %d rows", got, want)
	}
}
