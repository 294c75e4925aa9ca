// Package welcome collects the student's name and age on first launch,
// then hands off to the chat screen.
package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathgenius/internal/router"
	"github.com/abhisek/mathgenius/internal/screen"
	"github.com/abhisek/mathgenius/internal/tutor"
	"github.com/abhisek/mathgenius/internal/tutoring"
	"github.com/abhisek/mathgenius/internal/ui/components"
	"github.com/abhisek/mathgenius/internal/ui/layout"
	"github.com/abhisek/mathgenius/internal/ui/theme"
)

const mascotArt = `  ╭───────────╮
  │  ┌─────┐  │
  │  │ ◉ ◉ │  │
  │  │  ◡  │  │
  │  ├─────┤  │
  │  │ ±×÷ │  │
  │  └─────┘  │
  ╰───────────╯`

const (
	stepLoading = iota
	stepName
	stepAge
)

const (
	minAge = 4
	maxAge = 18
)

type profileLoadedMsg struct {
	profile *tutor.StudentProfile
	err     error
}

// WelcomeScreen walks a new student through name and age entry. Students
// with a saved profile skip straight to chat.
type WelcomeScreen struct {
	svc         *tutoring.Service
	studentID   string
	chatFactory func(*tutor.StudentProfile) screen.Screen

	step    int
	profile *tutor.StudentProfile
	input   components.TextInput
	errMsg  string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// chatFactory once a profile is in place.
func New(svc *tutoring.Service, studentID string, chatFactory func(*tutor.StudentProfile) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		svc:         svc,
		studentID:   studentID,
		chatFactory: chatFactory,
		step:        stepLoading,
		input:       components.NewTextInput("Your name...", false, 30),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Batch(w.loadProfile(), w.input.Init())
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (w *WelcomeScreen) loadProfile() tea.Cmd {
	return func() tea.Msg {
		profile, err := w.svc.Profile(context.Background(), w.studentID)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err != nil {
			w.errMsg = msg.err.Error()
			return w, nil
		}
		w.profile = msg.profile
		if w.profile.Name != tutor.DefaultStudentName {
			return w, w.transition()
		}
		w.step = stepName
		return w, nil

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}

	switch w.step {
	case stepName:
		name := strings.TrimSpace(w.input.Value())
		if name == "" {
			w.input.Submit(false)
			return w, nil
		}
		w.profile.Name = name
		w.step = stepAge
		w.input = components.NewTextInput("Your age...", true, 2)
		return w, w.input.Init()

	case stepAge:
		age, err := w.input.NumericValue()
		if err != nil || !validAge(age) {
			w.input.Submit(false)
			return w, nil
		}
		w.profile.Age = age
		w.profile.GradeLevel = gradeForAge(age)
		if err := w.svc.SaveProfile(context.Background(), w.profile); err != nil {
			w.errMsg = err.Error()
			return w, nil
		}
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	chat := w.chatFactory(w.profile)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: chat}
	}
}

// validAge bounds the accepted student age.
func validAge(age int) bool {
	return age >= minAge && age <= maxAge
}

// gradeForAge estimates a grade level from age. Rough, but only used as
// a starting point before real progress data exists.
func gradeForAge(age int) int {
	grade := age - 5
	if grade < 0 {
		grade = 0
	}
	if grade > 12 {
		grade = 12
	}
	return grade
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt))
	sections = append(sections, "")
	sections = append(sections, theme.Title.Render("Math Genius"))
	sections = append(sections, theme.Subtitle.Render("Your personal math tutor"))
	sections = append(sections, "")

	switch {
	case w.errMsg != "":
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg))

	case w.step == stepLoading:
		sections = append(sections, theme.Hint.Render("Loading..."))

	case w.step == stepName:
		sections = append(sections, theme.Body.Render("What's your name?"))
		sections = append(sections, "")
		sections = append(sections, w.input.View())

	case w.step == stepAge:
		sections = append(sections, theme.Body.Render("How old are you, "+w.profile.Name+"?"))
		sections = append(sections, "")
		sections = append(sections, w.input.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
