// Package progress implements the sequential learning-progression engine:
// gating, completion, badge awards, quiz answers and progress percentages
// over a read-only course catalog.
//
// An Engine is owned by a single learning session and is not safe for
// concurrent mutation. Queries have no side effects.
package progress

import (
	"github.com/google/uuid"

	"github.com/aiaware/aiaware/internal/catalog"
)

// Engine ties a catalog to one session's progression store.
type Engine struct {
	cat       *catalog.Catalog
	state     *State
	sessionID string
	strict    bool
	observers []Observer
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrictGating makes CompleteLevel reject levels that are not unlocked.
// Without it, completion does not consult gating.
func WithStrictGating() Option {
	return func(e *Engine) { e.strict = true }
}

// WithObserver registers an observer for progression events.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// WithSessionID sets the session identifier instead of generating one.
func WithSessionID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.sessionID = id
		}
	}
}

// New creates an Engine with an empty progression store.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:       cat,
		state:     NewState(),
		sessionID: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// SessionID returns the identifier of the session owning this engine.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Strict reports whether strict gating is enabled.
func (e *Engine) Strict() bool {
	return e.strict
}

// IsLevelCompleted reports whether levelID is in the completed set.
// Unknown levels are never completed.
func (e *Engine) IsLevelCompleted(levelID string) bool {
	return e.state.isCompleted(levelID)
}

// Answer returns the locked-in answer for a quiz level, if any.
func (e *Engine) Answer(levelID string) (AnswerOutcome, bool) {
	return e.state.answer(levelID)
}

// EarnedBadges returns the earned badge IDs in catalog module order.
func (e *Engine) EarnedBadges() []string {
	var out []string
	for _, m := range e.cat.Modules() {
		if e.state.hasBadge(m.BadgeID) {
			out = append(out, m.BadgeID)
		}
	}
	return out
}

// HasBadge reports whether badgeID has been earned.
func (e *Engine) HasBadge(badgeID string) bool {
	return e.state.hasBadge(badgeID)
}

// CompletedLevels returns completed level IDs in catalog order.
func (e *Engine) CompletedLevels() []string {
	var out []string
	for _, m := range e.cat.Modules() {
		for _, l := range m.Levels {
			if e.state.isCompleted(l.ID) {
				out = append(out, l.ID)
			}
		}
	}
	return out
}

func (e *Engine) emit(ev Event) {
	ev.SessionID = e.sessionID
	for _, o := range e.observers {
		o.Observe(ev)
	}
}
