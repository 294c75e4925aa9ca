// Package chat is the tutoring conversation screen: the student types (or
// picks a suggested reply), the tutor answers, engagement updates live.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathgenius/internal/screen"
	"github.com/abhisek/mathgenius/internal/tutor"
	"github.com/abhisek/mathgenius/internal/tutoring"
	"github.com/abhisek/mathgenius/internal/ui/components"
	"github.com/abhisek/mathgenius/internal/ui/layout"
)

type sessionReadyMsg struct {
	session *tutor.Session
	err     error
}

type replyMsg struct {
	session *tutor.Session
}

type sessionEndedMsg struct {
	err error
}

// ChatScreen implements screen.Screen for an active tutoring session.
type ChatScreen struct {
	svc     *tutoring.Service
	profile *tutor.StudentProfile
	subject string

	session    *tutor.Session
	input      components.TextInput
	suggestIdx int // -1 when typing free text
	waiting    bool

	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.HeaderProvider = (*ChatScreen)(nil)

// New creates a ChatScreen for the given student profile.
func New(svc *tutoring.Service, profile *tutor.StudentProfile, subject string) *ChatScreen {
	return &ChatScreen{
		svc:        svc,
		profile:    profile,
		subject:    subject,
		input:      components.NewTextInput("Ask me anything about math...", false, 200),
		suggestIdx: -1,
	}
}

func (c *ChatScreen) Title() string {
	if c.session != nil {
		return "Chatting with " + c.session.TutorID
	}
	return "Chat"
}

func (c *ChatScreen) HeaderInfo() (string, float64) {
	engagement := 0.0
	if c.session != nil {
		engagement = c.session.Engagement
	}
	return c.profile.Name, engagement
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Tab", Description: "Suggestions"},
		{Key: "Esc", Description: "End session"},
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return tea.Batch(c.createSession(), c.input.Init())
}

func (c *ChatScreen) createSession() tea.Cmd {
	return func() tea.Msg {
		session, err := c.svc.CreateSession(
			context.Background(), c.profile.StudentID, "", c.subject, c.profile.LearningGoals)
		return sessionReadyMsg{session: session, err: err}
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.err != nil {
			c.errMsg = msg.err.Error()
			return c, nil
		}
		c.session = msg.session
		return c, nil

	case replyMsg:
		c.session = msg.session
		c.waiting = false
		return c, nil

	case sessionEndedMsg:
		return c, tea.Quit

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if c.session != nil && !c.showingQuitConfirm {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if c.errMsg != "" {
		return c, tea.Quit
	}
	if c.session == nil {
		return c, nil
	}

	if c.showingQuitConfirm {
		switch key {
		case "y", "Y":
			c.showingQuitConfirm = false
			return c, c.endSession()
		case "n", "N", "esc":
			c.showingQuitConfirm = false
			return c, nil
		}
		return c, nil
	}

	switch key {
	case "esc":
		c.showingQuitConfirm = true
		return c, nil

	case "tab":
		c.cycleSuggestion(1)
		return c, nil

	case "shift+tab":
		c.cycleSuggestion(-1)
		return c, nil

	case "enter":
		return c.send()
	}

	// Any other typing drops back to free text.
	c.suggestIdx = -1
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// cycleSuggestion moves through the latest tutor message's quick replies,
// copying the selected one into the input.
func (c *ChatScreen) cycleSuggestion(delta int) {
	suggestions := c.currentSuggestions()
	if len(suggestions) == 0 {
		return
	}
	c.suggestIdx += delta
	if c.suggestIdx >= len(suggestions) {
		c.suggestIdx = -1
	}
	if c.suggestIdx < -1 {
		c.suggestIdx = len(suggestions) - 1
	}
	if c.suggestIdx >= 0 {
		c.input.SetValue(suggestions[c.suggestIdx])
	} else {
		c.input.Reset()
	}
}

// currentSuggestions returns the quick replies from the most recent tutor
// message.
func (c *ChatScreen) currentSuggestions() []string {
	if c.session == nil {
		return nil
	}
	for i := len(c.session.Messages) - 1; i >= 0; i-- {
		if c.session.Messages[i].FromTutor {
			return c.session.Messages[i].SuggestedResponses
		}
	}
	return nil
}

func (c *ChatScreen) send() (screen.Screen, tea.Cmd) {
	if c.waiting {
		return c, nil
	}
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return c, nil
	}

	c.waiting = true
	c.suggestIdx = -1
	c.input.Reset()

	session := c.session
	return c, func() tea.Msg {
		updated, _ := c.svc.SendMessage(context.Background(), session, text)
		return replyMsg{session: updated}
	}
}

func (c *ChatScreen) endSession() tea.Cmd {
	sessionID := c.session.ID
	return func() tea.Msg {
		_, err := c.svc.EndSession(context.Background(), sessionID)
		return sessionEndedMsg{err: err}
	}
}
