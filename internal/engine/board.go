// Package engine implements the 2048 grid engine: sliding, merging,
// tile spawning, terminal detection and one level of undo. It contains
// pure logic with no external dependencies so it stays independently
// testable.
package engine

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four move directions.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// Board represents a 4x4 game board. Zero means an empty cell;
// nonzero values are powers of two.
type Board [BoardSize][BoardSize]int

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// slideLine compacts and merges a single line toward index 0.
// Each tile merges at most once per move: a freshly merged tile is
// consumed and cannot absorb a third equal tile in the same pass.
// Returns the resulting line and the score gained from merges.
func slideLine(line [BoardSize]int) (result [BoardSize]int, gained int) {
	write := 0
	lastMerged := -1

	for i := range BoardSize {
		v := line[i]
		if v == 0 {
			continue
		}

		if write > 0 && result[write-1] == v && lastMerged != write-1 {
			result[write-1] *= 2
			gained += result[write-1]
			lastMerged = write - 1
		} else {
			result[write] = v
			write++
		}
	}

	return result, gained
}

// reverseLine reverses a line.
func reverseLine(line [BoardSize]int) [BoardSize]int {
	var result [BoardSize]int
	for i := range BoardSize {
		result[i] = line[BoardSize-1-i]
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][y]
		}
	}
	return result
}

// slideLeft slides all rows left and merges.
func slideLeft(board Board) (Board, int, bool) {
	var newBoard Board
	total := 0
	changed := false

	for y := range BoardSize {
		row, gained := slideLine(board[y])
		newBoard[y] = row
		total += gained
		if row != board[y] {
			changed = true
		}
	}

	return newBoard, total, changed
}

// slideRight slides all rows right: reverse, slide left, reverse back.
func slideRight(board Board) (Board, int, bool) {
	var newBoard Board
	total := 0
	changed := false

	for y := range BoardSize {
		row, gained := slideLine(reverseLine(board[y]))
		newBoard[y] = reverseLine(row)
		total += gained
		if newBoard[y] != board[y] {
			changed = true
		}
	}

	return newBoard, total, changed
}

// Slide performs a move in the given direction on a board.
// Up/Down reduce to Left/Right on the transposed board.
// Returns the new board, the score gained, and whether anything moved.
func Slide(board Board, dir Direction) (Board, int, bool) {
	switch dir {
	case DirLeft:
		return slideLeft(board)
	case DirRight:
		return slideRight(board)
	case DirUp:
		slid, gained, changed := slideLeft(transpose(board))
		return transpose(slid), gained, changed
	case DirDown:
		slid, gained, changed := slideRight(transpose(board))
		return transpose(slid), gained, changed
	default:
		return board, 0, false
	}
}

// EmptyCells returns the coordinates of all empty cells.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if at least one cell is empty.
func HasEmptyCell(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentPair returns true if two equal nonzero tiles touch
// horizontally or vertically. Scanning right and down neighbors from
// every cell visits each pair exactly once.
func HasAdjacentPair(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			v := board[y][x]
			if v == 0 {
				continue
			}
			if x < BoardSize-1 && board[y][x+1] == v {
				return true
			}
			if y < BoardSize-1 && board[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns true iff the board has no empty cell and no
// adjacent equal pair, i.e. no move can change it.
func IsTerminal(board Board) bool {
	return !HasEmptyCell(board) && !HasAdjacentPair(board)
}

// MaxTile returns the highest tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}

// TileSum returns the sum of all tile values on the board.
func TileSum(board Board) int {
	sum := 0
	for y := range BoardSize {
		for x := range BoardSize {
			sum += board[y][x]
		}
	}
	return sum
}

// Valid reports whether every cell is zero or a power of two >= 2.
func (b Board) Valid() bool {
	for y := range BoardSize {
		for x := range BoardSize {
			v := b[y][x]
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				return false
			}
		}
	}
	return true
}
