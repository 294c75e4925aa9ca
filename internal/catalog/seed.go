package catalog

import "github.com/abhisek/mathgenius/internal/tutor"

// builtins is the shipped personality catalog, in priority order.
// Catalog order matters: the selector resolves ties by position.
var builtins = []tutor.Personality{
	{
		Name: "Maya",
		Traits: map[string]float64{
			tutor.TraitEnthusiasm:   0.85,
			tutor.TraitPatience:     0.95,
			tutor.TraitFriendliness: 0.9,
			tutor.TraitFormality:    0.2,
		},
		PreferredStyle: tutor.StyleMultimodal,
		Strategies: []tutor.Strategy{
			tutor.StrategyScaffolding,
			tutor.StrategyGamification,
			tutor.StrategyStorytelling,
		},
		Responses: map[tutor.Context]string{
			tutor.ContextGreeting:       "Hi! I'm Maya. I'm so happy you're here to do some math with me.",
			tutor.ContextExplanation:    "Let's slow down and take this one small step at a time.",
			tutor.ContextEncouragement:  "You are doing great. Every try makes you stronger at this.",
			tutor.ContextChallenge:      "Ooh, you want a tricky one? Let's see what you can do.",
			tutor.ContextAssessment:     "Good question! Let's figure out the answer together.",
			tutor.ContextProblemSolving: "Okay, let's work through this problem together.",
		},
	},
	{
		Name: "Dr. Chen",
		Traits: map[string]float64{
			tutor.TraitEnthusiasm:   0.4,
			tutor.TraitPatience:     0.7,
			tutor.TraitFriendliness: 0.6,
			tutor.TraitFormality:    0.8,
		},
		PreferredStyle: tutor.StyleReadingWriting,
		Strategies: []tutor.Strategy{
			tutor.StrategyDirectInstruction,
			tutor.StrategySocraticMethod,
			tutor.StrategyGuidedDiscovery,
		},
		Responses: map[tutor.Context]string{
			tutor.ContextGreeting:       "Good day. I am Dr. Chen, and I will be your mathematics tutor.",
			tutor.ContextExplanation:    "Let us examine the underlying principle before we continue.",
			tutor.ContextEncouragement:  "Your reasoning is improving. Consistent practice produces mastery.",
			tutor.ContextChallenge:      "Very well. Consider this more demanding exercise.",
			tutor.ContextAssessment:     "An excellent question. Let us work through it precisely.",
			tutor.ContextProblemSolving: "Let us apply the method we have studied to this problem.",
		},
	},
	{
		Name: "Felix",
		Traits: map[string]float64{
			tutor.TraitEnthusiasm:   0.95,
			tutor.TraitPatience:     0.6,
			tutor.TraitFriendliness: 0.85,
			tutor.TraitFormality:    0.1,
		},
		PreferredStyle: tutor.StyleKinesthetic,
		Strategies: []tutor.Strategy{
			tutor.StrategyGamification,
			tutor.StrategyRealWorldApplication,
		},
		Responses: map[tutor.Context]string{
			tutor.ContextGreeting:       "Hey hey! Felix here. Ready to play with some numbers.",
			tutor.ContextExplanation:    "Let's build this up piece by piece, like stacking blocks.",
			tutor.ContextEncouragement:  "Boom. You're getting closer every single round.",
			tutor.ContextChallenge:      "Level up time. This one's got an extra twist.",
			tutor.ContextAssessment:     "Great question. Let's test it out and see what happens.",
			tutor.ContextProblemSolving: "Game on. Let's crack this one.",
		},
	},
	{
		Name: "Nova",
		Traits: map[string]float64{
			tutor.TraitEnthusiasm:   0.7,
			tutor.TraitPatience:     0.8,
			tutor.TraitFriendliness: 0.75,
			tutor.TraitFormality:    0.4,
		},
		PreferredStyle: tutor.StyleVisual,
		Strategies: []tutor.Strategy{
			tutor.StrategyStorytelling,
			tutor.StrategyGuidedDiscovery,
			tutor.StrategyScaffolding,
		},
		Responses: map[tutor.Context]string{
			tutor.ContextGreeting:       "Hello! I'm Nova. Picture math as a map — let's explore it.",
			tutor.ContextExplanation:    "Let's draw a picture of what's happening here.",
			tutor.ContextEncouragement:  "You can see the pattern forming. Keep going.",
			tutor.ContextChallenge:      "Here's a puzzle with a few more moving parts.",
			tutor.ContextAssessment:     "Let's sketch this question out and find the answer.",
			tutor.ContextProblemSolving: "Imagine the problem laid out in front of you. Where do we start?",
		},
	},
}
