package tutor

import "time"

// LearningProgress tracks per-topic mastery for one student.
type LearningProgress struct {
	Topic         string    `json:"topic"`
	Attempts      int       `json:"attempts"`
	Mastery       float64   `json:"mastery"`
	LastPracticed time.Time `json:"lastPracticed"`
}
