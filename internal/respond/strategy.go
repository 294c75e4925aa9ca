// Package respond selects a pedagogical strategy and synthesizes the tutor's
// reply text from templates, strategy phrasing, personality tone and
// emotional modulation.
package respond

import (
	"github.com/abhisek/mathgenius/internal/analyzer"
	"github.com/abhisek/mathgenius/internal/tutor"
)

// SelectStrategy maps a conversational context to a pedagogical strategy.
// One branch is emotion-conditioned, one is learning-style-conditioned;
// anything else falls through to the personality's default.
func SelectStrategy(session *tutor.Session, ctx tutor.Context, a analyzer.Analysis) tutor.Strategy {
	switch ctx {
	case tutor.ContextExplanation:
		if a.Emotion == tutor.EmotionFrustrated {
			return tutor.StrategyScaffolding
		}
		if session.Profile.PreferredStyle == tutor.StyleVisual {
			return tutor.StrategyStorytelling
		}
		return tutor.StrategyDirectInstruction
	case tutor.ContextEncouragement:
		return tutor.StrategyGamification
	case tutor.ContextChallenge:
		return tutor.StrategySocraticMethod
	case tutor.ContextAssessment:
		return tutor.StrategyGuidedDiscovery
	default:
		return session.Personality.DefaultStrategy()
	}
}
