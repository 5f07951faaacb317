package progress

import "github.com/aiaware/aiaware/internal/catalog"

// LevelState is a level's display state relative to the learner.
type LevelState int

const (
	StateLocked LevelState = iota
	StateAvailable
	StateCompleted
)

// Icon returns the display icon for a level state.
func (s LevelState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateAvailable:
		return "🔓"
	case StateCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a level state.
func (s LevelState) Label() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateAvailable:
		return "Available"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// IsUnlocked reports whether levelID may be presented as available. The
// first level of a module is always unlocked; any other level is unlocked
// iff its immediate predecessor in the same module is completed. Unknown
// IDs, and levels that do not belong to moduleID, are locked.
func (e *Engine) IsUnlocked(moduleID, levelID string) bool {
	owner, idx, ok := e.cat.Position(levelID)
	if !ok || owner != moduleID {
		return false
	}
	if idx == 0 {
		return true
	}
	prev, _ := e.cat.Predecessor(levelID)
	return e.state.isCompleted(prev)
}

// LevelState combines completion and gating into a display state.
// A level completed out of order still reports StateCompleted.
func (e *Engine) LevelState(moduleID, levelID string) LevelState {
	if owner, _, ok := e.cat.Position(levelID); !ok || owner != moduleID {
		return StateLocked
	}
	if e.state.isCompleted(levelID) {
		return StateCompleted
	}
	if e.IsUnlocked(moduleID, levelID) {
		return StateAvailable
	}
	return StateLocked
}

// NextLevel returns the first level of the module that is unlocked but not
// yet completed.
func (e *Engine) NextLevel(moduleID string) (catalog.Level, bool) {
	m, ok := e.cat.Module(moduleID)
	if !ok {
		return catalog.Level{}, false
	}
	for _, l := range m.Levels {
		if !e.state.isCompleted(l.ID) && e.IsUnlocked(moduleID, l.ID) {
			return l, true
		}
	}
	return catalog.Level{}, false
}
