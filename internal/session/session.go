// Package session runs one game of 2048, connecting the grid engine to
// its persistence, achievement and audio collaborators. Collaborators
// are injected interfaces so the engine and the session stay testable
// without a database or a terminal.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dkozhevn/tile48/internal/achievements"
	"github.com/dkozhevn/tile48/internal/engine"
	"github.com/dkozhevn/tile48/internal/storage"
)

// Recorder persists game state and finished results. Failures are
// logged and play continues; persistence never blocks a move.
type Recorder interface {
	SaveGame(storage.SavedGame) error
	LoadGame() (*storage.SavedGame, error)
	ClearSavedGame() error
	RecordResult(storage.Result) (int64, error)
	BestScore() (int, error)
	UnlockAchievement(id string) error
}

// Observer inspects game progress after each effective move and
// reports newly unlocked achievements. It never mutates game state.
type Observer interface {
	Evaluate(achievements.Context) []achievements.Achievement
}

// Notifier receives fire-and-forget game events, e.g. for sound cues.
type Notifier interface {
	MergePerformed(merges int)
	GameOver()
	AchievementUnlocked(a achievements.Achievement)
}

// Config holds session dependencies and settings. Recorder, Observer
// and Notifier may each be nil; the session then skips that concern.
// FourProb is applied verbatim when it lies in [0, 1), so a configured
// zero really means no fours; values outside that range fall back to
// the engine default.
type Config struct {
	Seed        int64
	FourProb    float64
	UndoEnabled bool
	Autosave    bool
	Recorder    Recorder
	Observer    Observer
	Notifier    Notifier
	Logger      *log.Logger
}

// Session is one playthrough from reset (or resume) to game over.
type Session struct {
	eng      *engine.Engine
	recorder Recorder
	observer Observer
	notifier Notifier
	logger   *log.Logger

	id          string
	best        int
	moveCount   int
	usedUndo    bool
	undoEnabled bool
	autosave    bool
	carried     time.Duration
	startedAt   time.Time
	resultSaved bool

	now func() time.Time
}

// New creates a session with a fresh game. The best score is seeded
// from the recorder's history when one is available.
func New(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		eng:         engine.New(cfg.Seed, engine.WithFourProb(cfg.FourProb)),
		recorder:    cfg.Recorder,
		observer:    cfg.Observer,
		notifier:    cfg.Notifier,
		logger:      logger,
		id:          uuid.NewString(),
		undoEnabled: cfg.UndoEnabled,
		autosave:    cfg.Autosave,
		now:         time.Now,
	}
	s.startedAt = s.now()

	if s.recorder != nil {
		best, err := s.recorder.BestScore()
		if err != nil {
			s.logger.Warn("could not load best score", "error", err)
		} else {
			s.best = best
		}
	}

	return s
}

// Resume replaces the fresh game with the saved one, if a well-formed
// save exists. Returns true when a game was restored. A corrupt or
// missing save leaves the fresh game in place.
func (s *Session) Resume() bool {
	if s.recorder == nil {
		return false
	}

	saved, err := s.recorder.LoadGame()
	if err != nil {
		s.logger.Warn("could not load saved game, starting fresh", "error", err)
		return false
	}
	if saved == nil {
		return false
	}

	s.eng.Restore(saved.Board, saved.Score)
	s.id = saved.ID
	s.moveCount = saved.MoveCount
	s.carried = saved.Elapsed
	if saved.BestScore > s.best {
		s.best = saved.BestScore
	}
	s.startedAt = s.now()
	return true
}

// NewGame discards the current game and starts over. The saved slot is
// cleared so an abandoned game is not resumed later.
func (s *Session) NewGame() {
	s.eng.Reset()
	s.id = uuid.NewString()
	s.moveCount = 0
	s.usedUndo = false
	s.carried = 0
	s.startedAt = s.now()
	s.resultSaved = false

	if s.recorder != nil && s.autosave {
		if err := s.recorder.ClearSavedGame(); err != nil {
			s.logger.Warn("could not clear saved game", "error", err)
		}
	}
}

// Move applies one slide. No-op moves return immediately and count for
// nothing. Effective moves update the move counter and the live best
// score, notify merges, run the achievement observer and autosave.
// Game over records the result and clears the resumable slot.
func (s *Session) Move(dir engine.Direction) engine.MoveResult {
	res := s.eng.Move(dir)
	if !res.Moved {
		return res
	}

	s.moveCount++
	if res.Score > s.best {
		s.best = res.Score
	}

	if s.notifier != nil && res.Merges > 0 {
		s.notifier.MergePerformed(res.Merges)
	}

	s.checkAchievements(res.GameOver)

	if res.GameOver {
		s.finish(res)
	} else if s.autosave {
		s.Save()
	}

	return res
}

// Undo reverts the last effective move. Returns false when undo is
// disabled or no snapshot is available (start of game, after an undo,
// or after game over).
func (s *Session) Undo() bool {
	if !s.undoEnabled || s.eng.GameOver() {
		return false
	}
	if !s.eng.Undo() {
		return false
	}
	s.usedUndo = true
	if s.autosave {
		s.Save()
	}
	return true
}

// Save writes the current game to the resumable slot. Sessions without
// autosave do not own the slot and never write it.
func (s *Session) Save() {
	if s.recorder == nil || !s.autosave || s.eng.GameOver() {
		return
	}

	err := s.recorder.SaveGame(storage.SavedGame{
		ID:        s.id,
		Board:     s.eng.Board(),
		Score:     s.eng.Score(),
		BestScore: s.best,
		MoveCount: s.moveCount,
		Elapsed:   s.Elapsed(),
	})
	if err != nil {
		s.logger.Warn("could not save game", "error", err)
	}
}

// finish records the result once and clears the saved slot.
func (s *Session) finish(res engine.MoveResult) {
	if s.notifier != nil {
		s.notifier.GameOver()
	}
	if s.recorder == nil || s.resultSaved {
		return
	}
	s.resultSaved = true

	_, err := s.recorder.RecordResult(storage.Result{
		Score:    res.Score,
		MaxTile:  engine.MaxTile(res.Board),
		Moves:    s.moveCount,
		Duration: s.Elapsed(),
	})
	if err != nil {
		s.logger.Warn("could not record result", "error", err)
	}
	// Only sessions that own the resumable slot may clear it; a shared
	// store serves many SSH games at once.
	if s.autosave {
		if err := s.recorder.ClearSavedGame(); err != nil {
			s.logger.Warn("could not clear saved game", "error", err)
		}
	}
}

// checkAchievements runs the observer and fans out unlock events.
func (s *Session) checkAchievements(gameOver bool) {
	if s.observer == nil {
		return
	}

	unlocked := s.observer.Evaluate(achievements.Context{
		Score:     s.eng.Score(),
		MoveCount: s.moveCount,
		Elapsed:   s.Elapsed(),
		UsedUndo:  s.usedUndo,
		GameOver:  gameOver,
		Board:     s.eng.Board(),
	})

	for _, a := range unlocked {
		if s.recorder != nil {
			if err := s.recorder.UnlockAchievement(a.ID); err != nil {
				s.logger.Warn("could not record achievement", "id", a.ID, "error", err)
			}
		}
		if s.notifier != nil {
			s.notifier.AchievementUnlocked(a)
		}
	}
}

// Board returns the current board.
func (s *Session) Board() engine.Board { return s.eng.Board() }

// Score returns the current score.
func (s *Session) Score() int { return s.eng.Score() }

// Best returns the best score seen, updated live during play.
func (s *Session) Best() int { return s.best }

// MoveCount returns the number of effective moves this game.
func (s *Session) MoveCount() int { return s.moveCount }

// Elapsed returns total play time including time before a resume.
func (s *Session) Elapsed() time.Duration {
	return s.carried + s.now().Sub(s.startedAt)
}

// GameOver reports whether the board is terminal.
func (s *Session) GameOver() bool { return s.eng.GameOver() }

// CanUndo reports whether an undo is currently possible.
func (s *Session) CanUndo() bool {
	return s.undoEnabled && !s.eng.GameOver() && s.eng.CanUndo()
}

// UsedUndo reports whether undo was used at any point this game.
func (s *Session) UsedUndo() bool { return s.usedUndo }
