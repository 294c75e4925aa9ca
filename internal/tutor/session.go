package tutor

import "time"

// Session is the aggregate root for one tutoring conversation.
//
// Profile and Personality are snapshots taken at session start, not live
// links. Messages is append-only within a session, and Engagement is a pure
// function of Messages. A session is a single-writer aggregate: the tutoring
// service serializes all mutation per session id.
type Session struct {
	ID             string             `json:"id"`
	StudentID      string             `json:"studentId"`
	TutorID        string             `json:"tutorId"`
	Subject        string             `json:"subject"`
	StartTime      time.Time          `json:"startTime"`
	EndTime        *time.Time         `json:"endTime,omitempty"`
	Status         SessionStatus      `json:"status"`
	Profile        StudentProfile     `json:"studentProfile"`
	Personality    Personality        `json:"tutorPersonality"`
	Messages       []Message          `json:"messages"`
	CurrentContext Context            `json:"currentContext"`
	Analytics      map[string]float64 `json:"sessionAnalytics"`
	Engagement     float64            `json:"studentEngagement"`
	Objectives     []string           `json:"learningObjectives"`
}

// NewSession creates an active session for a student/personality pair.
// The conversational context starts at greeting.
func NewSession(id string, profile *StudentProfile, personality Personality, subject string, objectives []string) *Session {
	return &Session{
		ID:             id,
		StudentID:      profile.StudentID,
		TutorID:        personality.Name,
		Subject:        subject,
		StartTime:      time.Now(),
		Status:         StatusActive,
		Profile:        *profile,
		Personality:    personality,
		CurrentContext: ContextGreeting,
		Analytics:      map[string]float64{},
		Engagement:     0.5,
		Objectives:     objectives,
	}
}

// StudentMessageCount returns the number of student turns so far.
func (s *Session) StudentMessageCount() int {
	n := 0
	for _, m := range s.Messages {
		if !m.FromTutor {
			n++
		}
	}
	return n
}

// Duration returns elapsed session time, using EndTime when the session
// has ended.
func (s *Session) Duration() time.Duration {
	if s.EndTime != nil {
		return s.EndTime.Sub(s.StartTime)
	}
	return time.Since(s.StartTime)
}
