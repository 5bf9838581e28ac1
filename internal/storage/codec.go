package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkozhevn/tile48/internal/engine"
)

// EncodeBoard flattens a board into a row-major comma-separated list
// of 16 integers, the durable representation of a saved game.
func EncodeBoard(board engine.Board) string {
	fields := make([]string, 0, engine.BoardSize*engine.BoardSize)
	for y := range engine.BoardSize {
		for x := range engine.BoardSize {
			fields = append(fields, strconv.Itoa(board[y][x]))
		}
	}
	return strings.Join(fields, ",")
}

// DecodeBoard parses the row-major representation back into a board.
// Anything other than 16 cells of zero-or-power-of-two values is an
// error; callers treat that as a corrupt save and start fresh.
func DecodeBoard(s string) (engine.Board, error) {
	var board engine.Board

	fields := strings.Split(s, ",")
	if len(fields) != engine.BoardSize*engine.BoardSize {
		return board, fmt.Errorf("storage: board has %d cells, want %d", len(fields), engine.BoardSize*engine.BoardSize)
	}

	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return board, fmt.Errorf("storage: bad board cell %d: %w", i, err)
		}
		board[i/engine.BoardSize][i%engine.BoardSize] = v
	}

	if !board.Valid() {
		return engine.Board{}, fmt.Errorf("storage: board contains non-power-of-two values")
	}

	return board, nil
}
