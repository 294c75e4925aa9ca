// Package analyzer classifies raw student utterances into a conversational
// context and inferred emotional state with a confidence score.
package analyzer

import (
	"strings"
	"unicode"

	"github.com/abhisek/mathgenius/internal/tutor"
)

// Confidence thresholds and values applied as overrides after rule matching.
const (
	shortMessageLen       = 5
	longMessageLen        = 50
	confidenceShort       = 0.5
	confidenceLong        = 0.9
	confidenceDefault     = 0.8
)

// Analysis is the result of classifying a single student message.
type Analysis struct {
	Context       tutor.Context `json:"context"`
	Emotion       tutor.Emotion `json:"emotion"`
	Confidence    float64       `json:"confidence"`
	MessageLength int           `json:"messageLength"`
	HasQuestion   bool          `json:"hasQuestion"`
	Rule          string        `json:"rule"`
}

// Analyzer runs an ordered rule table over student messages.
// First match wins; matching is not cumulative.
type Analyzer struct {
	rules []Rule
}

// New returns an analyzer with the default rule table.
func New() *Analyzer {
	return &Analyzer{rules: DefaultRules()}
}

// Analyze classifies one student message. It never fails: messages no rule
// matches fall through to problem-solving with a neutral emotion.
func (a *Analyzer) Analyze(message string) Analysis {
	normalized := normalize(message)

	result := Analysis{
		Context:       tutor.ContextProblemSolving,
		Emotion:       tutor.EmotionNeutral,
		MessageLength: len(message),
		HasQuestion:   strings.Contains(message, "?"),
		Rule:          "default",
	}

	for _, r := range a.rules {
		ctx, emo, ok := r.Apply(normalized)
		if ok {
			result.Context = ctx
			result.Emotion = emo
			result.Rule = r.Name()
			break
		}
	}

	// Length override, not a blend: short messages carry little signal,
	// long ones carry a lot.
	switch {
	case len(message) < shortMessageLen:
		result.Confidence = confidenceShort
	case len(message) > longMessageLen:
		result.Confidence = confidenceLong
	default:
		result.Confidence = confidenceDefault
	}

	return result
}

// normalize lowercases the message and collapses it to space-separated
// word tokens, keeping "?" as its own token so the question rule can use
// the same whole-token matching as keyword rules.
func normalize(message string) string {
	lower := strings.ToLower(message)
	var b strings.Builder
	b.WriteByte(' ')
	inWord := false
	for _, r := range lower {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			b.WriteRune(r)
			inWord = true
		case r == '?':
			if inWord {
				b.WriteByte(' ')
			}
			b.WriteString("? ")
			inWord = false
		default:
			if inWord {
				b.WriteByte(' ')
			}
			inWord = false
		}
	}
	if inWord {
		b.WriteByte(' ')
	}
	return b.String()
}

// containsPhrase reports whether the normalized text contains the keyword
// (or multi-word phrase) on whole-token boundaries.
func containsPhrase(normalized, phrase string) bool {
	return strings.Contains(normalized, " "+phrase+" ")
}
