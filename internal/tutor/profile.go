package tutor

import "time"

// DefaultStudentName is the placeholder used before a student introduces
// themselves. The synthesizer skips name personalization for it.
const DefaultStudentName = "Student"

// DefaultProficiency is assumed for subjects the student has no recorded
// proficiency in.
const DefaultProficiency = 0.5

// StudentProfile is the identity and learning state for one student.
type StudentProfile struct {
	StudentID          string              `json:"studentId"`
	Name               string              `json:"name"`
	Age                int                 `json:"age"`
	GradeLevel         int                 `json:"gradeLevel"`
	PreferredStyle     LearningStyle       `json:"preferredLearningStyle"`
	SubjectProficiency map[string]float64  `json:"subjectProficiency"`
	LearningGoals      []string            `json:"learningGoals"`
	StrugglingTopics   []string            `json:"strugglingTopics"`
	MasteredTopics     []string            `json:"masteredTopics"`
	Progress           []LearningProgress  `json:"progress,omitempty"`
	TotalSessions      int                 `json:"totalSessions"`
	AverageEngagement  float64             `json:"averageEngagement"`
	LastActive         time.Time           `json:"lastActive"`
}

// NewProfile returns a default-initialized profile for a student who has
// never interacted with the tutor.
func NewProfile(studentID string) *StudentProfile {
	return &StudentProfile{
		StudentID:          studentID,
		Name:               DefaultStudentName,
		PreferredStyle:     StyleMultimodal,
		SubjectProficiency: map[string]float64{},
		AverageEngagement:  0.5,
		LastActive:         time.Now(),
	}
}

// Proficiency returns the student's proficiency in a subject, or
// DefaultProficiency if the subject has never been practiced.
func (p *StudentProfile) Proficiency(subject string) float64 {
	if v, ok := p.SubjectProficiency[subject]; ok {
		return v
	}
	return DefaultProficiency
}

// FoldSessionEngagement folds a finished session's engagement into the
// profile's running average and bumps the session count.
//
// The two-term average (prev+new)/2 is recency-weighted, not a true
// cumulative mean: each new session counts as much as all history combined.
func (p *StudentProfile) FoldSessionEngagement(engagement float64, now time.Time) {
	p.AverageEngagement = (p.AverageEngagement + engagement) / 2
	p.TotalSessions++
	p.LastActive = now
}

// FoldTopicProgress records one session's worth of work on a topic,
// estimating mastery from session engagement with the same two-term
// average used for the profile-level fold.
func (p *StudentProfile) FoldTopicProgress(topic string, engagement float64, now time.Time) {
	for i := range p.Progress {
		if p.Progress[i].Topic == topic {
			p.Progress[i].Attempts++
			p.Progress[i].Mastery = (p.Progress[i].Mastery + engagement) / 2
			p.Progress[i].LastPracticed = now
			return
		}
	}
	p.Progress = append(p.Progress, LearningProgress{
		Topic:         topic,
		Attempts:      1,
		Mastery:       engagement,
		LastPracticed: now,
	})
}
