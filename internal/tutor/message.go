package tutor

import "time"

// Message is one turn in a tutoring conversation.
//
// Confidence is meaningful only for analyzed student messages; tutor
// messages carry 1.0. Metadata holds the strategy name and raw analysis
// for debugging and analytics only — nothing reads it on the hot path.
type Message struct {
	ID                 string         `json:"id"`
	Content            string         `json:"content"`
	FromTutor          bool           `json:"isFromTutor"`
	Timestamp          time.Time      `json:"timestamp"`
	Context            Context        `json:"context"`
	Confidence         float64        `json:"confidence"`
	SuggestedResponses []string       `json:"suggestedResponses,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}
