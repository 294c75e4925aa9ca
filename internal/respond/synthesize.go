package respond

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/abhisek/mathgenius/internal/analyzer"
	"github.com/abhisek/mathgenius/internal/tutor"
)

// FallbackSentence is returned whenever synthesis fails. This produces
// user-facing chat text, so the pipeline degrades silently instead of
// propagating errors.
const FallbackSentence = "Hmm, let me think about that differently. Can you tell me more about what you're working on?"

// Default templates used when the personality has no template for a context.
var defaultTemplates = map[tutor.Context]string{
	tutor.ContextGreeting:      "Hello! I'm excited to learn math with you today.",
	tutor.ContextExplanation:   "Let's break this down together, step by step.",
	tutor.ContextEncouragement: "You're doing really well. Keep going!",
	tutor.ContextChallenge:     "Ready for something a little trickier? Let's try it.",
	tutor.ContextAssessment:    "That's a good question. Let's work out the answer.",
}

// defaultFallbackTemplate covers contexts with no dedicated default.
const defaultFallbackTemplate = "Let's keep working on this problem together."

// Connective clause appended per strategy. Strategies not listed leave the
// base text unchanged.
var strategyPhrasing = map[tutor.Strategy]string{
	tutor.StrategyScaffolding:          " We'll start with the easiest piece and build up from there.",
	tutor.StrategySocraticMethod:       " What do you think the first step should be?",
	tutor.StrategyStorytelling:         " Imagine the numbers as characters in a story.",
	tutor.StrategyRealWorldApplication: " Think about where you'd see this outside of school.",
	tutor.StrategyGamification:         " Let's make it a game — each step you get earns a point.",
	tutor.StrategyGuidedDiscovery:      " I'll give you clues, and you find the path.",
}

// Reassurance phrases prepended when the student sounds frustrated.
var reassurancePhrases = []string{
	"It's completely okay to find this tricky. ",
	"Take a breath — we'll get through this together. ",
	"Lots of students find this part hard at first. ",
	"No rush. We can take all the time you need. ",
}

// Challenge-framing phrases prepended when the student sounds confident.
var challengePhrases = []string{
	"I love that energy! ",
	"You're on a roll! ",
	"Since you're feeling strong, ",
}

// Trait thresholds for tone adjustments.
const (
	enthusiasmThreshold   = 0.8
	friendlinessThreshold = 0.8
	formalityThreshold    = 0.7
	smileyProbability     = 0.3
)

const smiley = "😊"

var firstYou = regexp.MustCompile(`\byou\b`)

// Synthesizer composes tutor reply text. Randomness is injected so tests
// can pin outputs with a fixed seed.
type Synthesizer struct {
	rng *rand.Rand
}

// New returns a synthesizer seeded from the given value.
func New(seed int64) *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewSource(seed))}
}

// NewWithRand returns a synthesizer using the caller's generator.
func NewWithRand(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Synthesize builds the final message text for a context, strategy and
// analysis. The stages run in fixed order, each consuming the previous
// stage's output: base template, strategy phrasing, personality tone,
// emotional modulation, personalization. Any panic along the way degrades
// to FallbackSentence.
func (s *Synthesizer) Synthesize(session *tutor.Session, ctx tutor.Context, strategy tutor.Strategy, a analyzer.Analysis) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = FallbackSentence
		}
	}()

	out = s.baseTemplate(&session.Personality, ctx)
	out = applyStrategy(out, strategy)
	out = s.applyTone(out, &session.Personality)
	out = s.applyEmotion(out, a.Emotion)
	out = personalize(out, session.Profile.Name)
	return out
}

func (s *Synthesizer) baseTemplate(p *tutor.Personality, ctx tutor.Context) string {
	if tmpl, ok := p.Responses[ctx]; ok && tmpl != "" {
		return tmpl
	}
	if tmpl, ok := defaultTemplates[ctx]; ok {
		return tmpl
	}
	return defaultFallbackTemplate
}

func applyStrategy(text string, strategy tutor.Strategy) string {
	if suffix, ok := strategyPhrasing[strategy]; ok {
		return text + suffix
	}
	return text
}

func (s *Synthesizer) applyTone(text string, p *tutor.Personality) string {
	if p.Enthusiasm() > enthusiasmThreshold {
		text = strings.ReplaceAll(text, ".", "!")
		if !strings.Contains(text, "!") {
			text += "!"
		}
	}
	if p.Friendliness() > friendlinessThreshold {
		if !strings.Contains(text, smiley) && s.rng.Float64() < smileyProbability {
			text += " " + smiley
		}
	}
	if p.Formality() > formalityThreshold {
		text = strings.ReplaceAll(text, "Let's", "Let us")
		text = strings.ReplaceAll(text, "you're", "you are")
	}
	return text
}

func (s *Synthesizer) applyEmotion(text string, emotion tutor.Emotion) string {
	switch emotion {
	case tutor.EmotionFrustrated:
		return reassurancePhrases[s.rng.Intn(len(reassurancePhrases))] + text
	case tutor.EmotionConfident:
		return challengePhrases[s.rng.Intn(len(challengePhrases))] + text
	default:
		return text
	}
}

// personalize swaps the first whole-word "you" for the student's name,
// unless the profile still carries the placeholder name.
func personalize(text, name string) string {
	if name == "" || name == tutor.DefaultStudentName {
		return text
	}
	loc := firstYou.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + name + text[loc[1]:]
}
