package tutor

import "fmt"

// Trait names recognized in a personality's trait map.
const (
	TraitEnthusiasm  = "enthusiasm"
	TraitPatience    = "patience"
	TraitFriendliness = "friendliness"
	TraitFormality   = "formality"
)

// DefaultTraitValue is assumed for any recognized trait absent from the map.
const DefaultTraitValue = 0.5

// Personality is a fixed, catalog-defined tutor character: trait weights,
// preferred strategies and per-context response templates. Immutable once
// loaded; the catalog is process-wide static configuration.
type Personality struct {
	Name           string              `json:"name"`
	Traits         map[string]float64  `json:"traits"`
	PreferredStyle LearningStyle       `json:"preferredStyle"`
	Strategies     []Strategy          `json:"strategies"`
	Responses      map[Context]string  `json:"responses"`
}

// Trait returns the named trait value, or DefaultTraitValue if absent.
func (p *Personality) Trait(name string) float64 {
	if v, ok := p.Traits[name]; ok {
		return v
	}
	return DefaultTraitValue
}

func (p *Personality) Enthusiasm() float64   { return p.Trait(TraitEnthusiasm) }
func (p *Personality) Patience() float64     { return p.Trait(TraitPatience) }
func (p *Personality) Friendliness() float64 { return p.Trait(TraitFriendliness) }
func (p *Personality) Formality() float64    { return p.Trait(TraitFormality) }

// DefaultStrategy returns the personality's first supported strategy, or
// direct instruction if the list is empty.
func (p *Personality) DefaultStrategy() Strategy {
	if len(p.Strategies) > 0 {
		return p.Strategies[0]
	}
	return StrategyDirectInstruction
}

// Validate checks invariants that must hold for every catalog entry:
// a non-empty name, trait values in [0,1], and at least one response
// template so synthesis always has a base to work from.
func (p *Personality) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("personality has no name")
	}
	for name, v := range p.Traits {
		if v < 0 || v > 1 {
			return fmt.Errorf("personality %q: trait %q = %v out of [0,1]", p.Name, name, v)
		}
	}
	if len(p.Responses) == 0 {
		return fmt.Errorf("personality %q: no response templates", p.Name)
	}
	return nil
}
