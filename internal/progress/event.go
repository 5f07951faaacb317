package progress

// EventKind identifies a progression change.
type EventKind string

const (
	EventLevelCompleted EventKind = "level_completed"
	EventAnswerRecorded EventKind = "answer_recorded"
	EventBadgeEarned    EventKind = "badge_earned"
)

// Event describes a single change to the progression store. Replays and
// no-op completions produce no events.
type Event struct {
	Kind      EventKind
	SessionID string
	ModuleID  string
	LevelID   string // empty for badge events
	BadgeID   string // badge events only
	Option    string // answer events only
	Correct   bool   // answer events only
}

// Observer is notified synchronously after each change.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }
