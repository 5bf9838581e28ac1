package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkozhevn/tile48/internal/engine"
)

// GameAction is an input-derived game command.
type GameAction int

const (
	ActionNone GameAction = iota
	ActionMove
	ActionUndo
	ActionNewGame
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. The direction is
// meaningful only when the action is ActionMove.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (GameAction, engine.Direction) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return ActionQuit, 0
	case "up", "w", "k":
		return ActionMove, engine.DirUp
	case "down", "s", "j":
		return ActionMove, engine.DirDown
	case "left", "a", "h":
		return ActionMove, engine.DirLeft
	case "right", "d", "l":
		return ActionMove, engine.DirRight
	case "u":
		return ActionUndo, 0
	case "n", "r":
		return ActionNewGame, 0
	}
	return ActionNone, 0
}
