package progress

import (
	"fmt"
	"sort"

	"github.com/aiaware/aiaware/internal/catalog"
)

// SnapshotVersion is the current snapshot layout version.
const SnapshotVersion = 1

// Snapshot is a serializable copy of a progression store, used by
// persistence collaborators. The core itself never persists anything.
type Snapshot struct {
	Version   int             `json:"version"`
	SessionID string          `json:"session_id"`
	Completed []string        `json:"completed"`
	Answers   []AnswerOutcome `json:"answers,omitempty"`
	Badges    []string        `json:"badges,omitempty"`
}

// Snapshot captures the current progression store.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Version:   SnapshotVersion,
		SessionID: e.sessionID,
		Completed: e.CompletedLevels(),
		Badges:    e.EarnedBadges(),
	}
	for _, a := range e.state.answers {
		snap.Answers = append(snap.Answers, a)
	}
	sort.Slice(snap.Answers, func(i, j int) bool {
		return snap.Answers[i].LevelID < snap.Answers[j].LevelID
	})
	return snap
}

// Restore rebuilds an Engine from a snapshot. Every referenced level and
// option must exist in cat. Badges are recomputed from the completed set
// rather than trusted, so the badge invariant holds for any snapshot.
// Restoring emits no events.
func Restore(cat *catalog.Catalog, snap Snapshot, opts ...Option) (*Engine, error) {
	if snap.Version > SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported %d", snap.Version, SnapshotVersion)
	}

	e := New(cat, append([]Option{WithSessionID(snap.SessionID)}, opts...)...)

	for _, id := range snap.Completed {
		if !cat.HasLevel(id) {
			return nil, fmt.Errorf("restore completed %q: %w", id, ErrUnknownLevel)
		}
		e.state.markCompleted(id)
	}

	for _, a := range snap.Answers {
		level, _, ok := cat.Level(a.LevelID)
		if !ok {
			return nil, fmt.Errorf("restore answer %q: %w", a.LevelID, ErrUnknownLevel)
		}
		quiz, ok := level.Quiz()
		if !ok {
			return nil, fmt.Errorf("restore answer %q: %w", a.LevelID, ErrNotQuiz)
		}
		opt, ok := quiz.OptionByText(a.Option)
		if !ok {
			return nil, fmt.Errorf("restore answer %q with %q: %w", a.LevelID, a.Option, ErrUnknownOption)
		}
		// Correctness comes from the catalog, not the snapshot.
		e.state.lockAnswer(AnswerOutcome{LevelID: a.LevelID, Option: opt.Text, Correct: opt.Correct})
	}

	for _, m := range cat.Modules() {
		all := true
		for _, l := range m.Levels {
			if !e.state.isCompleted(l.ID) {
				all = false
				break
			}
		}
		if all {
			e.state.addBadge(m.BadgeID)
		}
	}
	return e, nil
}
