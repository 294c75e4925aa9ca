package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathgenius/internal/screen"
)

type stubScreen struct {
	name      string
	initCalls int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initCalls++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string               { return s.name }
func (s *stubScreen) Title() string                               { return s.name }

func TestPushPop(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}

	r := New(first)
	if r.Depth() != 1 || r.Active() != first {
		t.Fatalf("initial stack wrong: depth=%d", r.Depth())
	}

	r.Push(second)
	if r.Depth() != 2 || r.Active() != second {
		t.Errorf("push: depth=%d active=%v", r.Depth(), r.Active())
	}
	if second.initCalls != 1 {
		t.Errorf("push must call Init, got %d calls", second.initCalls)
	}

	r.Pop()
	if r.Depth() != 1 || r.Active() != first {
		t.Errorf("pop: depth=%d", r.Depth())
	}

	// Popping the last screen is a no-op.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("pop below one screen: depth=%d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}

	r := New(first)
	r.Replace(second)
	if r.Depth() != 1 || r.Active() != second {
		t.Errorf("replace: depth=%d active=%v", r.Depth(), r.Active())
	}
	if second.initCalls != 1 {
		t.Errorf("replace must call Init, got %d calls", second.initCalls)
	}
}

func TestUpdateNavigationMsgs(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}

	r := New(first)
	r.Update(PushScreenMsg{Screen: second})
	if r.Active() != second {
		t.Error("PushScreenMsg not handled")
	}
	r.Update(PopScreenMsg{})
	if r.Active() != first {
		t.Error("PopScreenMsg not handled")
	}

	r.Update(ReplaceScreenMsg{Screen: second})
	if r.Active() != second || r.Depth() != 1 {
		t.Error("ReplaceScreenMsg not handled")
	}
}
