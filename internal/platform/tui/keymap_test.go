package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkozhevn/tile48/internal/engine"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		dir  engine.Direction
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, engine.DirUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, engine.DirDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, engine.DirLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, engine.DirRight},
		{"wasd w", runeKey('w'), engine.DirUp},
		{"wasd s", runeKey('s'), engine.DirDown},
		{"wasd a", runeKey('a'), engine.DirLeft},
		{"wasd d", runeKey('d'), engine.DirRight},
		{"vim k", runeKey('k'), engine.DirUp},
		{"vim j", runeKey('j'), engine.DirDown},
		{"vim h", runeKey('h'), engine.DirLeft},
		{"vim l", runeKey('l'), engine.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := km.MapKey(tt.msg)
			if action != ActionMove {
				t.Fatalf("MapKey(%s) action = %v, want ActionMove", tt.msg, action)
			}
			if dir != tt.dir {
				t.Errorf("MapKey(%s) dir = %v, want %v", tt.msg, dir, tt.dir)
			}
		})
	}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action GameAction
	}{
		{"undo", runeKey('u'), ActionUndo},
		{"new game n", runeKey('n'), ActionNewGame},
		{"new game r", runeKey('r'), ActionNewGame},
		{"quit q", runeKey('q'), ActionQuit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"quit esc", tea.KeyMsg{Type: tea.KeyEsc}, ActionQuit},
		{"unmapped", runeKey('z'), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, _ := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%s) = %v, want %v", tt.msg, action, tt.action)
			}
		})
	}
}
