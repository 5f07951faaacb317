package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aiaware/aiaware/internal/progress"
)

// recordTimeout bounds a single event write.
const recordTimeout = 5 * time.Second

// Recorder appends progression events to the event log. It implements
// progress.Observer; a failed write is logged and never reaches the engine.
type Recorder struct {
	repo   EventRepo
	logger *zap.Logger
}

var _ progress.Observer = (*Recorder)(nil)

// NewRecorder returns a Recorder writing to repo. A nil logger discards
// warnings.
func NewRecorder(repo EventRepo, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{repo: repo, logger: logger.Named("recorder")}
}

func (r *Recorder) Observe(ev progress.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	err := r.repo.AppendProgressEvent(ctx, ProgressEventData{
		SessionID: ev.SessionID,
		Kind:      string(ev.Kind),
		ModuleID:  ev.ModuleID,
		LevelID:   ev.LevelID,
		BadgeID:   ev.BadgeID,
		Option:    ev.Option,
		Correct:   ev.Correct,
	})
	if err != nil {
		r.logger.Warn("failed to record progress event",
			zap.String("kind", string(ev.Kind)),
			zap.String("level", ev.LevelID),
			zap.Error(err),
		)
		return
	}
	r.logger.Debug("recorded progress event",
		zap.String("kind", string(ev.Kind)),
		zap.String("session", ev.SessionID),
		zap.String("level", ev.LevelID),
		zap.String("badge", ev.BadgeID),
	)
}
