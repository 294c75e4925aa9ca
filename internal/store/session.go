package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathgenius/internal/tutor"
)

// SessionRepo loads and saves tutoring sessions. An absent session is a
// normal outcome and comes back as (nil, nil), never an error.
type SessionRepo interface {
	Get(ctx context.Context, sessionID string) (*tutor.Session, error)
	Save(ctx context.Context, session *tutor.Session) error
	Recent(ctx context.Context, studentID string, limit int) ([]tutor.Session, error)
}

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*tutor.Session, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM tutor_sessions WHERE id = ?`, sessionID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}

	var session tutor.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (r *sessionRepo) Save(ctx context.Context, session *tutor.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO tutor_sessions (id, student_id, status, data, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET status = excluded.status, data = excluded.data, updated_at = excluded.updated_at`,
		session.ID, session.StudentID, string(session.Status), string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Recent(ctx context.Context, studentID string, limit int) ([]tutor.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM tutor_sessions WHERE student_id = ? ORDER BY updated_at DESC LIMIT ?`,
		studentID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer rows.Close()

	var sessions []tutor.Session
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		var session tutor.Session
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}
