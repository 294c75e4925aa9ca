package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/mathgenius/internal/analyzer"
	"github.com/abhisek/mathgenius/internal/tutor"
)

func newTestSession() *tutor.Session {
	profile := tutor.NewProfile("s1")
	personality := tutor.Personality{
		Name:      "Test",
		Responses: map[tutor.Context]string{tutor.ContextGreeting: "Hi!"},
	}
	return tutor.NewSession("sess1", profile, personality, "math", nil)
}

func TestApplyMessageAppendOnly(t *testing.T) {
	s := *newTestSession()
	a := analyzer.New()
	now := time.Now()

	for i := 0; i < 5; i++ {
		before := len(s.Messages)
		s = ApplyMessage(&s, msg("message", i%2 == 0, now.Add(time.Duration(i)*time.Second)), a)
		if len(s.Messages) != before+1 {
			t.Fatalf("after append %d: len = %d, want %d", i, len(s.Messages), before+1)
		}
	}
}

func TestApplyMessageDoesNotMutateInput(t *testing.T) {
	s := newTestSession()
	a := analyzer.New()

	_ = ApplyMessage(s, msg("hello there", false, time.Now()), a)

	if len(s.Messages) != 0 {
		t.Errorf("input session messages grew to %d", len(s.Messages))
	}
	if len(s.Analytics) != 0 {
		t.Errorf("input session analytics mutated: %v", s.Analytics)
	}
}

func TestApplyMessageCounters(t *testing.T) {
	s := *newTestSession()
	a := analyzer.New()
	now := time.Now()

	tutorMsg := msg("Welcome!", true, now)
	tutorMsg.Context = tutor.ContextGreeting
	s = ApplyMessage(&s, tutorMsg, a)
	s = ApplyMessage(&s, msg("hi", false, now.Add(time.Second)), a)

	if got := s.Analytics[KeyTotalMessages]; got != 2 {
		t.Errorf("totalMessages = %v, want 2", got)
	}
	if got := s.Analytics[KeyTutorMessages]; got != 1 {
		t.Errorf("tutorMessages = %v, want 1", got)
	}
	if got := s.Analytics[KeyStudentMessages]; got != 1 {
		t.Errorf("studentMessages = %v, want 1", got)
	}
	if got := s.Analytics["context_greeting"]; got != 1 {
		t.Errorf("context_greeting = %v, want 1", got)
	}
}

func TestAverageResponseTimeTwoTermAverage(t *testing.T) {
	s := *newTestSession()
	a := analyzer.New()
	base := time.Now()

	s = ApplyMessage(&s, msg("Welcome!", true, base), a)
	s = ApplyMessage(&s, msg("the answer is four", false, base.Add(10*time.Second)), a)

	// First fold: (0 + 10) / 2 = 5.
	if got := s.Analytics[KeyAverageResponseTime]; math.Abs(got-5) > 1e-9 {
		t.Fatalf("averageResponseTime = %v, want 5", got)
	}

	s = ApplyMessage(&s, msg("Correct!", true, base.Add(12*time.Second)), a)
	s = ApplyMessage(&s, msg("the answer is six", false, base.Add(32*time.Second)), a)

	// Second fold: (5 + 20) / 2 = 12.5 — recency-weighted, not a true mean.
	if got := s.Analytics[KeyAverageResponseTime]; math.Abs(got-12.5) > 1e-9 {
		t.Errorf("averageResponseTime = %v, want 12.5", got)
	}
}

func TestNoLatencyBeforeTutorSpeaks(t *testing.T) {
	s := *newTestSession()
	a := analyzer.New()

	s = ApplyMessage(&s, msg("first", false, time.Now()), a)
	if _, ok := s.Analytics[KeyAverageResponseTime]; ok {
		t.Error("averageResponseTime must not be set before any tutor message")
	}
}

func TestCurrentContextRecomputed(t *testing.T) {
	s := *newTestSession()
	a := analyzer.New()
	now := time.Now()

	tutorMsg := msg("Try this one.", true, now)
	tutorMsg.Context = tutor.ContextChallenge
	s = ApplyMessage(&s, tutorMsg, a)
	if s.CurrentContext != tutor.ContextChallenge {
		t.Errorf("context = %q, want challenge (from tutor message)", s.CurrentContext)
	}

	// Student messages are re-analyzed regardless of the stored context.
	studentMsg := msg("I need help with this", false, now.Add(time.Second))
	studentMsg.Context = tutor.ContextGreeting
	s = ApplyMessage(&s, studentMsg, a)
	if s.CurrentContext != tutor.ContextExplanation {
		t.Errorf("context = %q, want explanation (re-analyzed)", s.CurrentContext)
	}
}

func TestEngagementRecomputedAfterEveryMessage(t *testing.T) {
	s := *newTestSession()
	a := analyzer.New()
	now := time.Now()

	s = ApplyMessage(&s, msg("Welcome!", true, now), a)
	s = ApplyMessage(&s, msg("How do fractions work?", false, now.Add(time.Second)), a)

	want := EngagementScore(s.Messages)
	if s.Engagement != want {
		t.Errorf("engagement = %v, want %v", s.Engagement, want)
	}
}
