package catalog

import (
	"testing"

	"github.com/abhisek/mathgenius/internal/tutor"
)

func studentWith(mathProficiency float64, style tutor.LearningStyle) *tutor.StudentProfile {
	p := tutor.NewProfile("s1")
	p.SubjectProficiency["math"] = mathProficiency
	p.PreferredStyle = style
	return p
}

func TestSelectStruggling(t *testing.T) {
	// Proficiency 0.2 against the built-in catalog must pick Maya
	// (patience and friendliness both above 0.8).
	got := Select(studentWith(0.2, tutor.StyleVisual), Builtins())
	if got.Name != "Maya" {
		t.Errorf("selected %q, want Maya", got.Name)
	}
}

func TestSelectAdvanced(t *testing.T) {
	got := Select(studentWith(0.9, tutor.StyleVisual), Builtins())
	if got.Name != "Dr. Chen" {
		t.Errorf("selected %q, want Dr. Chen", got.Name)
	}
}

func TestSelectMidByStyle(t *testing.T) {
	tests := []struct {
		style tutor.LearningStyle
		want  string
	}{
		{tutor.StyleVisual, "Nova"},
		{tutor.StyleKinesthetic, "Felix"},
		{tutor.StyleReadingWriting, "Dr. Chen"},
		{tutor.StyleMultimodal, "Maya"},
	}
	for _, tt := range tests {
		got := Select(studentWith(0.5, tt.style), Builtins())
		if got.Name != tt.want {
			t.Errorf("style %s: selected %q, want %q", tt.style, got.Name, tt.want)
		}
	}
}

func TestSelectFallsBackToFirst(t *testing.T) {
	// No entry matches an auditory learner at mid proficiency.
	got := Select(studentWith(0.5, tutor.StyleAuditory), Builtins())
	if got.Name != builtins[0].Name {
		t.Errorf("selected %q, want first catalog entry %q", got.Name, builtins[0].Name)
	}

	// No entry is formal enough: fall back to first.
	casual := []tutor.Personality{
		{Name: "A", Traits: map[string]float64{tutor.TraitFormality: 0.1}},
		{Name: "B", Traits: map[string]float64{tutor.TraitFormality: 0.2}},
	}
	got = Select(studentWith(0.9, tutor.StyleVisual), casual)
	if got.Name != "A" {
		t.Errorf("selected %q, want A", got.Name)
	}
}

func TestSelectDefaultProficiency(t *testing.T) {
	// No recorded math proficiency defaults to 0.5, i.e. the mid band.
	p := tutor.NewProfile("s2")
	p.PreferredStyle = tutor.StyleKinesthetic
	got := Select(p, Builtins())
	if got.Name != "Felix" {
		t.Errorf("selected %q, want Felix", got.Name)
	}
}

func TestSelectDeterministic(t *testing.T) {
	s := studentWith(0.2, tutor.StyleVisual)
	first := Select(s, Builtins())
	for i := 0; i < 5; i++ {
		if got := Select(s, Builtins()); got.Name != first.Name {
			t.Fatalf("selection changed between calls: %q vs %q", got.Name, first.Name)
		}
	}
}

func TestBuiltinsValid(t *testing.T) {
	if err := Validate(Builtins()); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
}

func TestValidateRejectsDuplicates(t *testing.T) {
	list := []tutor.Personality{
		{Name: "Twin", Responses: map[tutor.Context]string{tutor.ContextGreeting: "hi"}},
		{Name: "Twin", Responses: map[tutor.Context]string{tutor.ContextGreeting: "hi"}},
	}
	if err := Validate(list); err == nil {
		t.Fatal("expected duplicate-name error")
	}
}
