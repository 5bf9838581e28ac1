package achievements

import (
	"testing"
	"time"

	"github.com/dkozhevn/tile48/internal/engine"
)

func boardWithMax(v int) engine.Board {
	var b engine.Board
	b[0][0] = v
	return b
}

func TestEvaluateTileMilestones(t *testing.T) {
	e := NewEvaluator(nil)

	fresh := e.Evaluate(Context{Board: boardWithMax(64)})
	if len(fresh) != 0 {
		t.Errorf("64 tile unlocked %d achievements, want 0", len(fresh))
	}

	fresh = e.Evaluate(Context{Board: boardWithMax(128)})
	if len(fresh) != 1 || fresh[0].ID != "tile_128" {
		t.Fatalf("128 tile unlocked %v, want [tile_128]", ids(fresh))
	}

	// Jumping to 1024 unlocks the skipped milestones in one pass.
	fresh = e.Evaluate(Context{Board: boardWithMax(1024), Elapsed: 10 * time.Minute})
	got := ids(fresh)
	want := []string{"tile_512", "tile_1024", "purist_1024"}
	if len(got) != len(want) {
		t.Fatalf("1024 tile unlocked %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("1024 tile unlocked %v, want %v", got, want)
		}
	}
}

func TestEvaluateReportsEachOnce(t *testing.T) {
	e := NewEvaluator(nil)
	ctx := Context{Board: boardWithMax(128)}

	if fresh := e.Evaluate(ctx); len(fresh) != 1 {
		t.Fatalf("first evaluation unlocked %d, want 1", len(fresh))
	}
	if fresh := e.Evaluate(ctx); len(fresh) != 0 {
		t.Errorf("second evaluation re-reported %v", ids(fresh))
	}
}

func TestEvaluatorSeededFromStorage(t *testing.T) {
	e := NewEvaluator([]string{"tile_128", "tile_512"})

	fresh := e.Evaluate(Context{Board: boardWithMax(512), Elapsed: 10 * time.Minute})
	if len(fresh) != 0 {
		t.Errorf("persisted achievements re-unlocked: %v", ids(fresh))
	}
}

func TestSprintRequiresPace(t *testing.T) {
	e := NewEvaluator(nil)

	fresh := e.Evaluate(Context{Board: boardWithMax(512), Elapsed: 10 * time.Minute})
	for _, a := range fresh {
		if a.ID == "sprint_512" {
			t.Error("sprint_512 unlocked despite slow pace")
		}
	}

	e = NewEvaluator(nil)
	fresh = e.Evaluate(Context{Board: boardWithMax(512), Elapsed: 2 * time.Minute})
	found := false
	for _, a := range fresh {
		if a.ID == "sprint_512" {
			found = true
		}
	}
	if !found {
		t.Error("sprint_512 not unlocked within the time limit")
	}
}

func TestPuristBlockedByUndo(t *testing.T) {
	e := NewEvaluator(nil)
	fresh := e.Evaluate(Context{Board: boardWithMax(1024), UsedUndo: true})
	for _, a := range fresh {
		if a.ID == "purist_1024" {
			t.Error("purist_1024 unlocked despite undo use")
		}
	}
}

func TestByID(t *testing.T) {
	if a := ByID("tile_2048"); a == nil || a.Name != "2048" {
		t.Errorf("ByID(tile_2048) = %v", a)
	}
	if a := ByID("nope"); a != nil {
		t.Errorf("ByID(nope) = %v, want nil", a)
	}
}

func ids(list []Achievement) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}
