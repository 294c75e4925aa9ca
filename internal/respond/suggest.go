package respond

import "github.com/abhisek/mathgenius/internal/tutor"

// Quick-reply suggestions offered with a tutor message, keyed by the
// context of the exchange.
var suggestionsByContext = map[tutor.Context][]string{
	tutor.ContextGreeting: {
		"Let's practice!",
		"Can you explain something?",
		"Give me a challenge",
	},
	tutor.ContextExplanation: {
		"Got it, thanks!",
		"Can you show an example?",
		"I'm still stuck",
	},
	tutor.ContextEncouragement: {
		"Let's keep going",
		"Can we try an easier one?",
	},
	tutor.ContextChallenge: {
		"Bring it on!",
		"Maybe something easier first",
	},
	tutor.ContextAssessment: {
		"Show me how",
		"Let me try first",
	},
	tutor.ContextProblemSolving: {
		"I have an answer",
		"I need a hint",
	},
}

var defaultSuggestions = []string{
	"Let's keep going",
	"I have a question",
}

// Suggestions returns the quick-reply strings for a context. The returned
// slice is a copy; callers may keep it.
func Suggestions(ctx tutor.Context) []string {
	src, ok := suggestionsByContext[ctx]
	if !ok {
		src = defaultSuggestions
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
