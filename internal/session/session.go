// Package session ties a progression engine to persistent storage: it
// resumes from the latest snapshot, records every change in the event log
// and saves a new snapshot after each mutation.
package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/progress"
	"github.com/aiaware/aiaware/internal/store"
)

// DefaultKeep is how many snapshots are retained after each save.
const DefaultKeep = 20

// ErrIncompatibleSnapshot is returned when saved progress refers to levels
// the current course does not have.
var ErrIncompatibleSnapshot = errors.New("saved progress does not match the course (run `aiaware reset` to start over)")

// Session is one learner's progress over a catalog, backed by a store.
type Session struct {
	engine  *progress.Engine
	snaps   store.SnapshotRepo
	logger  *zap.Logger
	keep    int
	resumed bool
}

// Config configures Open.
type Config struct {
	Snapshots store.SnapshotRepo // nil keeps progress in memory only
	Events    store.EventRepo    // nil disables the event log
	Logger    *zap.Logger
	Strict    bool
	Keep      int // snapshots to retain; 0 means DefaultKeep
}

// Open resumes the latest saved progress for cat, or starts fresh.
func Open(ctx context.Context, cat *catalog.Catalog, cfg Config) (*Session, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("session")

	keep := cfg.Keep
	if keep <= 0 {
		keep = DefaultKeep
	}

	var opts []progress.Option
	if cfg.Strict {
		opts = append(opts, progress.WithStrictGating())
	}
	if cfg.Events != nil {
		opts = append(opts, progress.WithObserver(store.NewRecorder(cfg.Events, logger)))
	}

	s := &Session{snaps: cfg.Snapshots, logger: logger, keep: keep}

	var latest *store.Snapshot
	if cfg.Snapshots != nil {
		var err error
		latest, err = cfg.Snapshots.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("load progress: %w", err)
		}
	}

	if latest == nil {
		s.engine = progress.New(cat, opts...)
		logger.Debug("new session", zap.String("session_id", s.engine.SessionID()))
		return s, nil
	}

	engine, err := progress.Restore(cat, latest.Data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIncompatibleSnapshot, err)
	}
	s.engine = engine
	s.resumed = true
	logger.Debug("resumed session",
		zap.String("session_id", engine.SessionID()),
		zap.Int("completed", len(engine.CompletedLevels())),
	)
	return s, nil
}

// Engine returns the progression engine for queries.
func (s *Session) Engine() *progress.Engine {
	return s.engine
}

// Resumed reports whether the session was restored from a snapshot.
func (s *Session) Resumed() bool {
	return s.resumed
}

// Complete marks a level completed and saves.
func (s *Session) Complete(ctx context.Context, levelID string) error {
	before := len(s.engine.CompletedLevels())
	if err := s.engine.CompleteLevel(levelID); err != nil {
		return err
	}
	if len(s.engine.CompletedLevels()) == before {
		return nil
	}
	return s.Save(ctx)
}

// Answer records a quiz answer and saves.
func (s *Session) Answer(ctx context.Context, levelID, option string) (progress.AnswerOutcome, error) {
	_, replay := s.engine.Answer(levelID)
	out, err := s.engine.RecordAnswer(levelID, option)
	if err != nil || replay {
		return out, err
	}
	return out, s.Save(ctx)
}

// Save writes a snapshot of the current progress and prunes old ones.
func (s *Session) Save(ctx context.Context) error {
	if s.snaps == nil {
		return nil
	}
	snap := &store.Snapshot{Data: s.engine.Snapshot()}
	if err := s.snaps.Save(ctx, snap); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if err := s.snaps.Prune(ctx, s.keep); err != nil {
		s.logger.Warn("failed to prune snapshots", zap.Error(err))
	}
	return nil
}

// Reset deletes all saved progress.
func Reset(ctx context.Context, snaps store.SnapshotRepo) error {
	if err := snaps.Clear(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
