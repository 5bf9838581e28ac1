package tui

import (
	"github.com/dkozhevn/tile48/internal/achievements"
)

// BellNotifier is the terminal stand-in for the audio collaborator:
// it rings the bell on merges, game over and achievement unlocks.
// Rather than writing to the terminal itself, it marks a cue pending
// and the game model emits it with the next rendered frame, so the
// bell reaches whatever output the program renders to (including SSH
// sessions).
type BellNotifier struct {
	pending bool
}

// NewBellNotifier creates an idle notifier.
func NewBellNotifier() *BellNotifier {
	return &BellNotifier{}
}

func (b *BellNotifier) ring() {
	if b != nil {
		b.pending = true
	}
}

// Take returns the bell character when a cue is pending and clears it,
// so one event rings at most once.
func (b *BellNotifier) Take() string {
	if b == nil || !b.pending {
		return ""
	}
	b.pending = false
	return "\a"
}

// MergePerformed rings once regardless of how many merges happened.
func (b *BellNotifier) MergePerformed(int) { b.ring() }

// GameOver rings on a terminal board.
func (b *BellNotifier) GameOver() { b.ring() }

// AchievementUnlocked rings on a new achievement.
func (b *BellNotifier) AchievementUnlocked(achievements.Achievement) { b.ring() }
