package engine

import "math/rand"

// Default spawn probability for a 4-tile. The remaining mass spawns a 2.
const DefaultFourProb = 0.10

// MoveResult is the outcome of a move operation.
type MoveResult struct {
	Board      Board // Board after slide + spawn
	Score      int   // Total score after the move
	ScoreDelta int   // Score gained by this move's merges
	Moved      bool  // Whether any tile moved or merged
	GameOver   bool  // True if the post-move board is terminal
	Merges     int   // Number of merges performed
	Spawned    *Tile // Tile spawned after the move, nil if Moved is false
}

// Tile is a spawned tile with its position and value.
type Tile struct {
	Cell  Cell
	Value int
}

// snapshot holds the pre-move state for one level of undo.
type snapshot struct {
	board Board
	score int
}

// Engine owns a single game's board, score and undo snapshot.
// It is synchronous and not safe for concurrent use; callers serialize
// input, which the presentation layer already does.
type Engine struct {
	rng      *rand.Rand
	fourProb float64

	board Board
	score int
	undo  *snapshot
}

// Option configures an Engine.
type Option func(*Engine)

// WithFourProb sets the probability of spawning a 4 instead of a 2.
func WithFourProb(p float64) Option {
	return func(e *Engine) {
		if p >= 0 && p < 1 {
			e.fourProb = p
		}
	}
}

// New creates an engine seeded for deterministic play and resets it
// to a fresh game (two tiles spawned on an empty board).
func New(seed int64, opts ...Option) *Engine {
	e := &Engine{
		rng:      rand.New(rand.NewSource(seed)),
		fourProb: DefaultFourProb,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// Reset clears the board, spawns two tiles, zeroes the score and
// invalidates the undo snapshot.
func (e *Engine) Reset() Board {
	e.board = Board{}
	e.score = 0
	e.undo = nil
	e.SpawnTile()
	e.SpawnTile()
	return e.board
}

// Restore loads a previously saved board and score, e.g. when resuming
// a persisted game. The undo snapshot is invalidated.
func (e *Engine) Restore(board Board, score int) {
	e.board = board
	e.score = score
	e.undo = nil
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// GameOver reports whether the current board is terminal.
func (e *Engine) GameOver() bool {
	return IsTerminal(e.board)
}

// SpawnTile puts a 2 (or a 4, with the configured probability) into a
// uniformly random empty cell. A full board is a no-op, not an error.
func (e *Engine) SpawnTile() *Tile {
	empty := EmptyCells(e.board)
	if len(empty) == 0 {
		return nil
	}

	cell := empty[e.rng.Intn(len(empty))]
	value := 2
	if e.rng.Float64() < e.fourProb {
		value = 4
	}

	e.board[cell.Y][cell.X] = value
	return &Tile{Cell: cell, Value: value}
}

// Move slides the board in the given direction.
//
// If the slide changes nothing, the move is a no-op: no tile spawns,
// no snapshot is taken and GameOver is not evaluated. Otherwise the
// pre-move state is captured for undo, exactly one tile spawns, and
// the resulting board is checked for the terminal state.
func (e *Engine) Move(dir Direction) MoveResult {
	newBoard, gained, changed := Slide(e.board, dir)
	if !changed {
		return MoveResult{Board: e.board, Score: e.score, Moved: false}
	}

	e.undo = &snapshot{board: e.board, score: e.score}

	merges := mergeCount(e.board, newBoard)
	e.board = newBoard
	e.score += gained
	spawned := e.SpawnTile()

	return MoveResult{
		Board:      e.board,
		Score:      e.score,
		ScoreDelta: gained,
		Moved:      true,
		GameOver:   IsTerminal(e.board),
		Merges:     merges,
		Spawned:    spawned,
	}
}

// CanUndo reports whether an undo snapshot is available.
func (e *Engine) CanUndo() bool {
	return e.undo != nil
}

// Undo restores the board and score captured before the most recent
// move and consumes the snapshot. A second consecutive undo returns
// false and changes nothing; there is no multi-level history.
func (e *Engine) Undo() bool {
	if e.undo == nil {
		return false
	}
	e.board = e.undo.board
	e.score = e.undo.score
	e.undo = nil
	return true
}

// mergeCount derives how many merges a slide performed from the drop
// in nonzero-tile count. Spawning happens after this is computed.
func mergeCount(before, after Board) int {
	return nonzeroCount(before) - nonzeroCount(after)
}

func nonzeroCount(board Board) int {
	n := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] != 0 {
				n++
			}
		}
	}
	return n
}
