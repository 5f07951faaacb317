package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendProgressEvent(ctx context.Context, data ProgressEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress_events
			(sequence, timestamp, session_id, kind, module_id, level_id, badge_id, answer, correct)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, nowNano(), data.SessionID, data.Kind, data.ModuleID,
		data.LevelID, data.BadgeID, data.Option, data.Correct,
	)
	if err != nil {
		return fmt.Errorf("save progress event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryProgressEvents(ctx context.Context, opts QueryOpts) ([]ProgressEventRecord, error) {
	filter, args := buildFilter(opts, true)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, timestamp, session_id, kind, module_id, level_id, badge_id, answer, correct
		 FROM progress_events`+filter, args...)
	if err != nil {
		return nil, fmt.Errorf("query progress events: %w", err)
	}
	defer rows.Close()

	var out []ProgressEventRecord
	for rows.Next() {
		var (
			rec ProgressEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.SessionID, &rec.Kind,
			&rec.ModuleID, &rec.LevelID, &rec.BadgeID, &rec.Option, &rec.Correct); err != nil {
			return nil, fmt.Errorf("scan progress event: %w", err)
		}
		rec.Timestamp = fromUnixNano(ts)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) BadgeCounts(ctx context.Context) (map[string]int, int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT badge_id, COUNT(*) FROM progress_events
		 WHERE kind = 'badge_earned' GROUP BY badge_id`)
	if err != nil {
		return nil, 0, fmt.Errorf("query badge counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	total := 0
	for rows.Next() {
		var (
			id string
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, 0, fmt.Errorf("scan badge count: %w", err)
		}
		counts[id] = n
		total += n
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate badge counts: %w", err)
	}
	return counts, total, nil
}
