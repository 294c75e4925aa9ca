package analytics

import (
	"github.com/abhisek/mathgenius/internal/analyzer"
	"github.com/abhisek/mathgenius/internal/tutor"
)

// Analytics counter keys.
const (
	KeyTotalMessages       = "totalMessages"
	KeyTutorMessages       = "tutorMessages"
	KeyStudentMessages     = "studentMessages"
	KeyAverageResponseTime = "averageResponseTime"
	contextKeyPrefix       = "context_"
)

// ApplyMessage folds one message into a session, returning a new session
// value. The input session is not mutated; Messages stays append-only:
// the result always has exactly one more message than the input.
func ApplyMessage(session *tutor.Session, msg tutor.Message, a *analyzer.Analyzer) tutor.Session {
	updated := *session

	counters := make(map[string]float64, len(session.Analytics)+4)
	for k, v := range session.Analytics {
		counters[k] = v
	}

	counters[KeyTotalMessages]++
	if msg.FromTutor {
		counters[KeyTutorMessages]++
	} else {
		counters[KeyStudentMessages]++
	}
	counters[contextKeyPrefix+string(msg.Context)]++

	if !msg.FromTutor {
		if latency, ok := latestTutorLatency(session.Messages, msg); ok {
			prev := counters[KeyAverageResponseTime]
			// Two-term average, not a cumulative mean: each new latency
			// carries weight 0.5, so the metric is recency-weighted.
			counters[KeyAverageResponseTime] = (prev + latency) / 2
		}
	}

	messages := make([]tutor.Message, len(session.Messages), len(session.Messages)+1)
	copy(messages, session.Messages)
	messages = append(messages, msg)

	updated.Analytics = counters
	updated.Messages = messages
	updated.Engagement = EngagementScore(messages)

	// Tutor messages set the context directly; student messages are
	// re-analyzed so the session tracks where the conversation moved.
	if msg.FromTutor {
		updated.CurrentContext = msg.Context
	} else {
		updated.CurrentContext = a.Analyze(msg.Content).Context
	}

	return updated
}

// latestTutorLatency returns the seconds between the most recent prior
// tutor message and the new student message. False when the tutor has not
// spoken yet.
func latestTutorLatency(prior []tutor.Message, msg tutor.Message) (float64, bool) {
	for i := len(prior) - 1; i >= 0; i-- {
		if prior[i].FromTutor {
			return msg.Timestamp.Sub(prior[i].Timestamp).Seconds(), true
		}
	}
	return 0, false
}
