package respond

import (
	"testing"

	"github.com/abhisek/mathgenius/internal/analyzer"
	"github.com/abhisek/mathgenius/internal/catalog"
	"github.com/abhisek/mathgenius/internal/tutor"
)

func testSession(style tutor.LearningStyle, personality string) *tutor.Session {
	profile := tutor.NewProfile("s1")
	profile.PreferredStyle = style
	p, _ := catalog.ByName(catalog.Builtins(), personality)
	return tutor.NewSession("sess1", profile, p, "math", nil)
}

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name    string
		style   tutor.LearningStyle
		context tutor.Context
		emotion tutor.Emotion
		want    tutor.Strategy
	}{
		{"explanation frustrated", tutor.StyleVisual, tutor.ContextExplanation, tutor.EmotionFrustrated, tutor.StrategyScaffolding},
		{"explanation visual", tutor.StyleVisual, tutor.ContextExplanation, tutor.EmotionConfused, tutor.StrategyStorytelling},
		{"explanation plain", tutor.StyleAuditory, tutor.ContextExplanation, tutor.EmotionConfused, tutor.StrategyDirectInstruction},
		{"encouragement", tutor.StyleVisual, tutor.ContextEncouragement, tutor.EmotionPositive, tutor.StrategyGamification},
		{"challenge", tutor.StyleVisual, tutor.ContextChallenge, tutor.EmotionConfident, tutor.StrategySocraticMethod},
		{"assessment", tutor.StyleVisual, tutor.ContextAssessment, tutor.EmotionNeutral, tutor.StrategyGuidedDiscovery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession(tt.style, "Maya")
			a := analyzer.Analysis{Emotion: tt.emotion}
			got := SelectStrategy(s, tt.context, a)
			if got != tt.want {
				t.Errorf("strategy = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectStrategyPersonalityDefault(t *testing.T) {
	// Unhandled contexts use the personality's first listed strategy.
	s := testSession(tutor.StyleVisual, "Maya")
	got := SelectStrategy(s, tutor.ContextGreeting, analyzer.Analysis{Emotion: tutor.EmotionNeutral})
	if got != tutor.StrategyScaffolding {
		t.Errorf("strategy = %q, want scaffolding (Maya's default)", got)
	}
}

func TestSelectStrategyEmptyStrategyList(t *testing.T) {
	profile := tutor.NewProfile("s1")
	s := tutor.NewSession("sess1", profile, tutor.Personality{Name: "Bare"}, "math", nil)
	got := SelectStrategy(s, tutor.ContextProblemSolving, analyzer.Analysis{})
	if got != tutor.StrategyDirectInstruction {
		t.Errorf("strategy = %q, want directInstruction", got)
	}
}
