package analyzer

import "github.com/abhisek/mathgenius/internal/tutor"

// Rule is a first-match-wins classification rule over a normalized message.
// Returns (context, emotion, true) when the rule fires.
type Rule interface {
	Name() string
	Apply(normalized string) (tutor.Context, tutor.Emotion, bool)
}

// keywordRule fires when any of its keywords appears as a whole word
// (or whole phrase) in the normalized message.
type keywordRule struct {
	name     string
	keywords []string
	context  tutor.Context
	emotion  tutor.Emotion
}

func (r *keywordRule) Name() string { return r.name }

func (r *keywordRule) Apply(normalized string) (tutor.Context, tutor.Emotion, bool) {
	for _, kw := range r.keywords {
		if containsPhrase(normalized, kw) {
			return r.context, r.emotion, true
		}
	}
	return "", "", false
}

// questionRule fires on any message containing a question mark.
type questionRule struct{}

func (r *questionRule) Name() string { return "question" }

func (r *questionRule) Apply(normalized string) (tutor.Context, tutor.Emotion, bool) {
	if containsPhrase(normalized, "?") {
		return tutor.ContextAssessment, tutor.EmotionNeutral, true
	}
	return "", "", false
}

// DefaultRules returns the classification rules in priority order.
//
// "understand" appears in both the help-seeking and gratitude keyword sets.
// That overlap is inherited behavior: the help rule is listed first, so a
// message like "now I understand" still classifies as explanation. Rule
// order is the only tie-break — do not reorder.
func DefaultRules() []Rule {
	return []Rule{
		&keywordRule{
			name:     "greeting",
			keywords: []string{"hi", "hello", "hey"},
			context:  tutor.ContextGreeting,
			emotion:  tutor.EmotionNeutral,
		},
		&keywordRule{
			name:     "help-seeking",
			keywords: []string{"help", "stuck", "understand"},
			context:  tutor.ContextExplanation,
			emotion:  tutor.EmotionConfused,
		},
		&keywordRule{
			name:     "gratitude",
			keywords: []string{"thanks", "got it", "understand"},
			context:  tutor.ContextEncouragement,
			emotion:  tutor.EmotionPositive,
		},
		&keywordRule{
			name:     "difficulty",
			keywords: []string{"hard", "difficult", "frustrated"},
			context:  tutor.ContextEncouragement,
			emotion:  tutor.EmotionFrustrated,
		},
		&keywordRule{
			name:     "escalation",
			keywords: []string{"more", "challenge", "harder"},
			context:  tutor.ContextChallenge,
			emotion:  tutor.EmotionConfident,
		},
		&questionRule{},
	}
}
