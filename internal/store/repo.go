package store

import (
	"context"
	"time"

	"github.com/aiaware/aiaware/internal/progress"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // progress events only
	Newest    bool      // newest first instead of sequence order
}

// Snapshot represents a point-in-time capture of learner progress.
type Snapshot struct {
	ID        int
	SessionID string
	Sequence  int64
	Timestamp time.Time
	Data      progress.Snapshot
}

// SnapshotRepo manages learner progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. A zero Sequence is filled with the last
	// event sequence and a zero Timestamp with the current time.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Clear deletes every snapshot.
	Clear(ctx context.Context) error
}

// ProgressEventData captures one change to the progression store.
type ProgressEventData struct {
	SessionID string
	Kind      string
	ModuleID  string
	LevelID   string
	BadgeID   string
	Option    string
	Correct   bool
}

// ProgressEventRecord is a stored progress event.
type ProgressEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ProgressEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
	Failures     int
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendProgressEvent records a progression change.
	AppendProgressEvent(ctx context.Context, data ProgressEventData) error
	// QueryProgressEvents returns progress events matching opts.
	QueryProgressEvents(ctx context.Context, opts QueryOpts) ([]ProgressEventRecord, error)
	// BadgeCounts returns how often each badge was earned across sessions,
	// plus the total.
	BadgeCounts(ctx context.Context) (map[string]int, int, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	// QueryLLMEvents returns LLM events matching opts.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
	// LLMUsageByPurpose aggregates usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
