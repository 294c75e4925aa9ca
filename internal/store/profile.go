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

// ProfileRepo loads and saves student profiles. Get never fails with
// not-found: an absent profile comes back default-initialized, matching
// the "first interaction creates the profile" lifecycle.
type ProfileRepo interface {
	Get(ctx context.Context, studentID string) (*tutor.StudentProfile, error)
	Save(ctx context.Context, profile *tutor.StudentProfile) error
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Get(ctx context.Context, studentID string) (*tutor.StudentProfile, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM student_profiles WHERE student_id = ?`, studentID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return tutor.NewProfile(studentID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	var profile tutor.StudentProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", studentID, err)
	}
	return &profile, nil
}

func (r *profileRepo) Save(ctx context.Context, profile *tutor.StudentProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO student_profiles (student_id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(student_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		profile.StudentID, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
