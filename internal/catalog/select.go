package catalog

import "github.com/abhisek/mathgenius/internal/tutor"

// Proficiency bands for tutor selection.
const (
	strugglingBelow = 0.3
	advancedAbove   = 0.7
)

// Trait thresholds the selector filters on.
const (
	patienceFloor     = 0.8
	friendlinessFloor = 0.8
	formalityFloor    = 0.5
)

// Select picks a tutor personality for a student. It is a priority-ordered
// rule table over math proficiency, deterministic and pure: ties resolve by
// catalog position, and every branch falls back to the first catalog entry.
//
//   - struggling (< 0.3): first entry that is both very patient and very
//     friendly
//   - advanced (> 0.7): first entry with formality above 0.5
//   - otherwise: first entry whose preferred style matches the student's
func Select(student *tutor.StudentProfile, list []tutor.Personality) tutor.Personality {
	if len(list) == 0 {
		return tutor.Personality{}
	}

	proficiency := student.Proficiency("math")

	switch {
	case proficiency < strugglingBelow:
		for _, p := range list {
			if p.Patience() > patienceFloor && p.Friendliness() > friendlinessFloor {
				return p
			}
		}
	case proficiency > advancedAbove:
		for _, p := range list {
			if p.Formality() > formalityFloor {
				return p
			}
		}
	default:
		for _, p := range list {
			if p.PreferredStyle == student.PreferredStyle {
				return p
			}
		}
	}

	return list[0]
}
