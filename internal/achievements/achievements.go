// Package achievements evaluates play milestones after each move.
// The evaluator is a pure observer: it reads move context and reports
// newly unlocked achievement IDs, never touching engine state.
package achievements

import (
	"sort"
	"time"

	"github.com/dkozhevn/tile48/internal/engine"
)

// Context is the per-move snapshot the evaluator receives after every
// successful (board-changing) move.
type Context struct {
	Score     int
	MoveCount int
	Elapsed   time.Duration
	UsedUndo  bool
	GameOver  bool
	Board     engine.Board
}

// Achievement is a single unlockable milestone.
type Achievement struct {
	ID    string
	Name  string
	Desc  string
	check func(Context) bool
}

// Definitions lists all achievements, in display order.
var Definitions = []Achievement{
	{
		ID:    "tile_128",
		Name:  "Three Digits",
		Desc:  "Build a 128 tile",
		check: tileAtLeast(128),
	},
	{
		ID:    "tile_512",
		Name:  "Heavy Lifting",
		Desc:  "Build a 512 tile",
		check: tileAtLeast(512),
	},
	{
		ID:    "tile_1024",
		Name:  "Kilotile",
		Desc:  "Build a 1024 tile",
		check: tileAtLeast(1024),
	},
	{
		ID:    "tile_2048",
		Name:  "2048",
		Desc:  "Build the classic 2048 tile",
		check: tileAtLeast(2048),
	},
	{
		ID:    "tile_4096",
		Name:  "Beyond the Name",
		Desc:  "Build a 4096 tile",
		check: tileAtLeast(4096),
	},
	{
		ID:    "score_10k",
		Name:  "Ten Thousand",
		Desc:  "Reach a score of 10,000",
		check: func(c Context) bool { return c.Score >= 10000 },
	},
	{
		ID:   "sprint_512",
		Name: "Sprinter",
		Desc: "Build a 512 tile within three minutes",
		check: func(c Context) bool {
			return engine.MaxTile(c.Board) >= 512 && c.Elapsed <= 3*time.Minute
		},
	},
	{
		ID:   "purist_1024",
		Name: "Purist",
		Desc: "Build a 1024 tile without undoing a single move",
		check: func(c Context) bool {
			return engine.MaxTile(c.Board) >= 1024 && !c.UsedUndo
		},
	},
	{
		ID:   "marathon",
		Name: "Marathon",
		Desc: "Make 1,000 moves in one game",
		check: func(c Context) bool { return c.MoveCount >= 1000 },
	},
}

func tileAtLeast(target int) func(Context) bool {
	return func(c Context) bool {
		return engine.MaxTile(c.Board) >= target
	}
}

// Evaluator tracks which achievements are already unlocked and reports
// each one exactly once.
type Evaluator struct {
	unlocked map[string]bool
}

// NewEvaluator creates an evaluator. Already-unlocked IDs (from
// persistence) are seeded so they are never reported again.
func NewEvaluator(alreadyUnlocked []string) *Evaluator {
	unlocked := make(map[string]bool, len(alreadyUnlocked))
	for _, id := range alreadyUnlocked {
		unlocked[id] = true
	}
	return &Evaluator{unlocked: unlocked}
}

// Evaluate checks all definitions against the move context and returns
// the achievements that newly unlocked, in definition order.
func (e *Evaluator) Evaluate(ctx Context) []Achievement {
	var fresh []Achievement
	for _, a := range Definitions {
		if e.unlocked[a.ID] {
			continue
		}
		if a.check(ctx) {
			e.unlocked[a.ID] = true
			fresh = append(fresh, a)
		}
	}
	return fresh
}

// Unlocked returns the sorted IDs of everything unlocked so far.
func (e *Evaluator) Unlocked() []string {
	ids := make([]string, 0, len(e.unlocked))
	for id := range e.unlocked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByID returns the definition for an ID, or nil if unknown.
func ByID(id string) *Achievement {
	for i := range Definitions {
		if Definitions[i].ID == id {
			return &Definitions[i]
		}
	}
	return nil
}
