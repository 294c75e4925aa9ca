package tutor

// Context is a coarse classification of what the current exchange is about.
type Context string

const (
	ContextGreeting       Context = "greeting"
	ContextExplanation    Context = "explanation"
	ContextEncouragement  Context = "encouragement"
	ContextAssessment     Context = "assessment"
	ContextChallenge      Context = "challenge"
	ContextFarewell       Context = "farewell"
	ContextProblemSolving Context = "problemSolving"
	ContextReview         Context = "review"
)

// Emotion is the inferred emotional state behind a student message.
type Emotion string

const (
	EmotionNeutral    Emotion = "neutral"
	EmotionPositive   Emotion = "positive"
	EmotionConfused   Emotion = "confused"
	EmotionFrustrated Emotion = "frustrated"
	EmotionConfident  Emotion = "confident"
)

// Strategy is a pedagogical technique the synthesizer signals intent to use.
type Strategy string

const (
	StrategyDirectInstruction    Strategy = "directInstruction"
	StrategyScaffolding          Strategy = "scaffolding"
	StrategySocraticMethod       Strategy = "socraticMethod"
	StrategyStorytelling         Strategy = "storytelling"
	StrategyRealWorldApplication Strategy = "realWorldApplication"
	StrategyGamification         Strategy = "gamification"
	StrategyGuidedDiscovery      Strategy = "guidedDiscovery"
)

// LearningStyle is a student's preferred way of taking in new material.
type LearningStyle string

const (
	StyleVisual         LearningStyle = "visual"
	StyleAuditory       LearningStyle = "auditory"
	StyleKinesthetic    LearningStyle = "kinesthetic"
	StyleReadingWriting LearningStyle = "readingWriting"
	StyleMultimodal     LearningStyle = "multimodal"
)

// SessionStatus tracks the lifecycle of a tutoring session.
type SessionStatus string

const (
	StatusWaiting   SessionStatus = "waiting"
	StatusActive    SessionStatus = "active"
	StatusPaused    SessionStatus = "paused"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)
