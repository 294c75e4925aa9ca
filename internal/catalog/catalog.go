// Package catalog holds the tutor personality catalog and the proficiency-
// based tutor selector. The built-in catalog is process-wide static
// configuration, safe for unsynchronized concurrent reads.
package catalog

import "github.com/abhisek/mathgenius/internal/tutor"

// Builtins returns a copy of the shipped catalog in priority order.
func Builtins() []tutor.Personality {
	out := make([]tutor.Personality, len(builtins))
	copy(out, builtins)
	return out
}

// ByName returns the personality with the given name from the list,
// or false if absent.
func ByName(list []tutor.Personality, name string) (tutor.Personality, bool) {
	for _, p := range list {
		if p.Name == name {
			return p, true
		}
	}
	return tutor.Personality{}, false
}

// Validate checks every catalog entry and rejects duplicate names.
// Called once at load time so runtime lookups never surprise.
func Validate(list []tutor.Personality) error {
	seen := make(map[string]bool, len(list))
	for i := range list {
		p := &list[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.Name] {
			return &DuplicateNameError{Name: p.Name}
		}
		seen[p.Name] = true
	}
	return nil
}

// DuplicateNameError reports two catalog entries sharing a name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return "duplicate personality name: " + e.Name
}
