// Package analytics folds messages into session counters and computes the
// engagement score. Everything here is a pure transform: callers get a new
// session value and the input is never mutated.
package analytics

import "github.com/abhisek/mathgenius/internal/tutor"

// Engagement score weights.
const (
	participationWeight = 0.4
	lengthCap           = 0.3
	questionWeight      = 0.3
	lengthScale         = 100.0
)

// EngagementScore estimates student participation quality in [0,1] from the
// full message sequence. It is a pure function: recomputing over the same
// messages always yields the same value.
//
// Fewer than two messages give the neutral 0.5. A session where the student
// never spoke scores zero.
func EngagementScore(messages []tutor.Message) float64 {
	if len(messages) < 2 {
		return 0.5
	}

	studentCount := 0
	totalLen := 0
	withQuestion := 0
	for _, m := range messages {
		if m.FromTutor {
			continue
		}
		studentCount++
		totalLen += len(m.Content)
		if containsQuestion(m.Content) {
			withQuestion++
		}
	}
	if studentCount == 0 {
		return 0
	}

	participation := participationWeight * float64(studentCount) / float64(len(messages))

	avgLen := float64(totalLen) / float64(studentCount)
	lengthScore := avgLen / lengthScale
	if lengthScore < 0 {
		lengthScore = 0
	}
	if lengthScore > lengthCap {
		lengthScore = lengthCap
	}

	curiosity := questionWeight * float64(withQuestion) / float64(studentCount)

	score := participation + lengthScore + curiosity
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func containsQuestion(s string) bool {
	for _, r := range s {
		if r == '?' {
			return true
		}
	}
	return false
}
