package progress

import "fmt"

// CompleteLevel inserts levelID into the completed set and awards the
// owning module's badge once every level of that module is completed.
// Completing an already-completed level is a no-op. Unless strict gating is
// enabled, the level does not need to be unlocked.
func (e *Engine) CompleteLevel(levelID string) error {
	moduleID, _, ok := e.cat.Position(levelID)
	if !ok {
		return fmt.Errorf("complete %q: %w", levelID, ErrUnknownLevel)
	}
	if e.state.isCompleted(levelID) {
		return nil
	}
	if e.strict && !e.IsUnlocked(moduleID, levelID) {
		return fmt.Errorf("complete %q: %w", levelID, ErrLocked)
	}

	e.state.markCompleted(levelID)
	e.emit(Event{Kind: EventLevelCompleted, ModuleID: moduleID, LevelID: levelID})

	e.evaluateBadge(moduleID)
	return nil
}

// evaluateBadge awards moduleID's badge if all of its levels are completed.
func (e *Engine) evaluateBadge(moduleID string) {
	m, ok := e.cat.Module(moduleID)
	if !ok || e.state.hasBadge(m.BadgeID) {
		return
	}
	for _, l := range m.Levels {
		if !e.state.isCompleted(l.ID) {
			return
		}
	}
	e.state.addBadge(m.BadgeID)
	e.emit(Event{Kind: EventBadgeEarned, ModuleID: moduleID, BadgeID: m.BadgeID})
}
