package analyzer

import (
	"strings"
	"testing"

	"github.com/abhisek/mathgenius/internal/tutor"
)

func TestAnalyzeContexts(t *testing.T) {
	a := New()

	tests := []struct {
		name    string
		message string
		context tutor.Context
		emotion tutor.Emotion
	}{
		{"greeting hi", "hi there", tutor.ContextGreeting, tutor.EmotionNeutral},
		{"greeting hello", "Hello tutor", tutor.ContextGreeting, tutor.EmotionNeutral},
		{"help", "I need help with this", tutor.ContextExplanation, tutor.EmotionConfused},
		{"stuck", "I'm stuck on problem 3", tutor.ContextExplanation, tutor.EmotionConfused},
		{"gratitude", "thanks, that makes sense", tutor.ContextEncouragement, tutor.EmotionPositive},
		{"got it", "ok got it now", tutor.ContextEncouragement, tutor.EmotionPositive},
		{"difficulty", "this is so difficult", tutor.ContextEncouragement, tutor.EmotionFrustrated},
		{"frustrated", "I am frustrated with fractions", tutor.ContextEncouragement, tutor.EmotionFrustrated},
		{"escalation", "give me a challenge", tutor.ContextChallenge, tutor.EmotionConfident},
		{"harder", "can we do harder ones", tutor.ContextChallenge, tutor.EmotionConfident},
		{"question", "what is 3 x 4?", tutor.ContextAssessment, tutor.EmotionNeutral},
		{"default", "the answer is twelve", tutor.ContextProblemSolving, tutor.EmotionNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.message)
			if got.Context != tt.context {
				t.Errorf("context = %q, want %q", got.Context, tt.context)
			}
			if got.Emotion != tt.emotion {
				t.Errorf("emotion = %q, want %q", got.Emotion, tt.emotion)
			}
		})
	}
}

// The help-seeking rule is listed before the difficulty rule, so a message
// matching both keeps the explanation classification.
func TestHelpBeatsDifficulty(t *testing.T) {
	a := New()
	got := a.Analyze("I'm stuck, this is hard")
	if got.Context != tutor.ContextExplanation {
		t.Errorf("context = %q, want %q", got.Context, tutor.ContextExplanation)
	}
	if got.Emotion != tutor.EmotionConfused {
		t.Errorf("emotion = %q, want %q", got.Emotion, tutor.EmotionConfused)
	}
}

// "understand" appears in both the help-seeking and gratitude keyword sets;
// rule order pins the winner to help-seeking. Inherited behavior — see
// DefaultRules.
func TestUnderstandOverlapPinnedToHelp(t *testing.T) {
	a := New()
	got := a.Analyze("oh I understand now")
	if got.Context != tutor.ContextExplanation {
		t.Errorf("context = %q, want %q", got.Context, tutor.ContextExplanation)
	}
	if got.Rule != "help-seeking" {
		t.Errorf("rule = %q, want help-seeking", got.Rule)
	}
}

func TestGreetingBeatsEverything(t *testing.T) {
	a := New()
	got := a.Analyze("hi, I need help?")
	if got.Context != tutor.ContextGreeting {
		t.Errorf("context = %q, want %q", got.Context, tutor.ContextGreeting)
	}
}

func TestConfidenceByLength(t *testing.T) {
	a := New()

	tests := []struct {
		name    string
		message string
		want    float64
	}{
		{"short", "hey", 0.5},
		{"short non-matching", "ok", 0.5},
		{"medium", "what is two plus two?", 0.8},
		{"long", strings.Repeat("I would like to practice fractions ", 3), 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.message)
			if got.Confidence != tt.want {
				t.Errorf("confidence = %v, want %v (len %d)", got.Confidence, tt.want, len(tt.message))
			}
		})
	}
}

func TestWholeWordMatching(t *testing.T) {
	a := New()

	// "hi" inside "this" must not trigger the greeting rule, and "hard"
	// inside "harder" must not trigger difficulty (escalation wins).
	got := a.Analyze("this one")
	if got.Context != tutor.ContextProblemSolving {
		t.Errorf("context = %q, want problemSolving", got.Context)
	}

	got = a.Analyze("make them harder")
	if got.Context != tutor.ContextChallenge {
		t.Errorf("context = %q, want challenge", got.Context)
	}
}

func TestHasQuestionAndLength(t *testing.T) {
	a := New()
	got := a.Analyze("why?")
	if !got.HasQuestion {
		t.Error("expected HasQuestion")
	}
	if got.MessageLength != 4 {
		t.Errorf("messageLength = %d, want 4", got.MessageLength)
	}
}
