package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// SessionEventData captures one session lifecycle event for the stats log.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	TotalMessages   int
	StudentMessages int
	Engagement      float64
	DurationSecs    int
}

// SessionEvent is a recorded lifecycle event.
type SessionEvent struct {
	Sequence        int64
	SessionID       string
	Action          string
	TotalMessages   int
	StudentMessages int
	Engagement      float64
	DurationSecs    int
	Timestamp       time.Time
}

// EventRepo provides append and query access to the session event log.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	RecentEvents(ctx context.Context, limit int) ([]SessionEvent, error)
}

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events
			(sequence, session_id, action, total_messages, student_messages, engagement, duration_secs, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.Action, data.TotalMessages,
		data.StudentMessages, data.Engagement, data.DurationSecs, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentEvents(ctx context.Context, limit int) ([]SessionEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, session_id, action, total_messages, student_messages, engagement, duration_secs, timestamp
		 FROM session_events ORDER BY sequence DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var events []SessionEvent
	for rows.Next() {
		var e SessionEvent
		if err := rows.Scan(&e.Sequence, &e.SessionID, &e.Action, &e.TotalMessages,
			&e.StudentMessages, &e.Engagement, &e.DurationSecs, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// sequenceCounter assigns a single increasing sequence number to every
// event so the log keeps a global order even if more event types are added
// later. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
