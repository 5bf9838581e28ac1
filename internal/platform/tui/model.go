// Package tui is the Bubble Tea presentation layer: the interactive
// game view, the scoreboard and the SSH server.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkozhevn/tile48/internal/engine"
	"github.com/dkozhevn/tile48/internal/session"
)

// GameModel is the Bubble Tea model for one interactive game.
// The game is turn-based, so there is no tick loop; the model reacts
// to key presses only.
type GameModel struct {
	sess     *session.Session
	keys     *KeyMapper
	styles   Styles
	bell     *BellNotifier
	width    int
	height   int
	status   string
	quitting bool
}

// NewGameModel creates a game model around a prepared session. The
// bell may be nil when audio cues are disabled; when set it should be
// the same notifier the session reports events to, so pending cues are
// flushed with each frame.
func NewGameModel(sess *session.Session, colorTiles bool, bell *BellNotifier) GameModel {
	return GameModel{
		sess:   sess,
		keys:   NewKeyMapper(),
		styles: NewStyles(colorTiles),
		bell:   bell,
	}
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, dir := m.keys.MapKey(msg)
	m.status = ""

	switch action {
	case ActionQuit:
		// Keep the game resumable unless it is already over.
		m.sess.Save()
		m.quitting = true
		return m, tea.Quit

	case ActionMove:
		if m.sess.GameOver() {
			return m, nil
		}
		res := m.sess.Move(dir)
		if res.GameOver {
			m.status = "Game over"
		}
		return m, nil

	case ActionUndo:
		if !m.sess.Undo() {
			m.status = "Nothing to undo"
		}
		return m, nil

	case ActionNewGame:
		m.sess.NewGame()
		return m, nil
	}

	return m, nil
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("tile48"))
	b.WriteString("\n\n")
	b.WriteString(m.renderHUD())
	b.WriteString("\n")
	b.WriteString(m.styles.Board.Render(m.renderBoard()))
	b.WriteString("\n")

	if m.sess.GameOver() {
		b.WriteString(m.renderGameOver())
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.HUDLabel.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.helpLine()))

	view := b.String()
	if m.width > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	// The renderer owns the terminal, so the bell travels with the
	// frame instead of bypassing it on a raw writer.
	return view + m.bell.Take()
}

// renderHUD draws score, best score and move count.
func (m GameModel) renderHUD() string {
	parts := []string{
		m.styles.HUDLabel.Render("Score ") + m.styles.HUDValue.Render(fmt.Sprintf("%d", m.sess.Score())),
		m.styles.HUDLabel.Render("Best ") + m.styles.HUDValue.Render(fmt.Sprintf("%d", m.sess.Best())),
		m.styles.HUDLabel.Render("Moves ") + m.styles.HUDValue.Render(fmt.Sprintf("%d", m.sess.MoveCount())),
	}
	return strings.Join(parts, m.styles.HUDLabel.Render("  │  "))
}

// renderBoard draws the 4x4 grid with styled tiles.
func (m GameModel) renderBoard() string {
	board := m.sess.Board()

	rows := make([]string, engine.BoardSize)
	for y := range engine.BoardSize {
		cells := make([]string, engine.BoardSize)
		for x := range engine.BoardSize {
			cells[x] = m.styles.Tile(board[y][x])
		}
		rows[y] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderGameOver draws the terminal-board overlay.
func (m GameModel) renderGameOver() string {
	lines := fmt.Sprintf("GAME OVER\n\nScore: %d   Max tile: %d\n\nn: new game   q: quit",
		m.sess.Score(), engine.MaxTile(m.sess.Board()))
	return m.styles.Overlay.Render(lines)
}

// helpLine returns the control hints, dropping undo when unavailable.
func (m GameModel) helpLine() string {
	hints := "arrows/wasd/hjkl: move"
	if m.sess.CanUndo() {
		hints += "  u: undo"
	}
	hints += "  n: new game  q: quit"
	return hints
}

// IsQuitting reports whether the user asked to leave.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// RunGame runs the interactive game in the local terminal.
func RunGame(sess *session.Session, colorTiles bool, bell *BellNotifier) error {
	p := tea.NewProgram(
		NewGameModel(sess, colorTiles, bell),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
