package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkozhevn/tile48/internal/session"
)

func newTestModel(t *testing.T) GameModel {
	t.Helper()
	sess := session.New(session.Config{Seed: 11, UndoEnabled: true})
	return NewGameModel(sess, false, nil)
}

func TestModelMoveUpdatesBoard(t *testing.T) {
	m := newTestModel(t)
	before := m.sess.Board()

	// At least one of the four directions must change the opening board.
	keys := []tea.KeyMsg{
		{Type: tea.KeyLeft},
		{Type: tea.KeyRight},
		{Type: tea.KeyUp},
		{Type: tea.KeyDown},
	}
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(GameModel)
	}

	if m.sess.Board() == before {
		t.Error("board unchanged after moves in all four directions")
	}
}

func TestModelUndoStatus(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(runeKey('u'))
	m = next.(GameModel)
	if m.status == "" {
		t.Error("no status message for undo with nothing to undo")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	m = next.(GameModel)
	if !m.IsQuitting() {
		t.Error("q did not quit")
	}
	if cmd == nil {
		t.Error("quit produced no command")
	}
	if m.View() != "" {
		t.Error("quitting model still renders a view")
	}
}

func TestModelViewShowsScore(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	for _, want := range []string{"tile48", "Score", "Best", "Moves"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
