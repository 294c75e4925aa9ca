// Package tutoring orchestrates the response pipeline: analyze the student
// message, select a strategy, synthesize a reply, fold analytics, persist.
// It owns the public operations the app calls and the per-session write
// serialization the session aggregate requires.
package tutoring

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathgenius/internal/analytics"
	"github.com/abhisek/mathgenius/internal/analyzer"
	"github.com/abhisek/mathgenius/internal/catalog"
	"github.com/abhisek/mathgenius/internal/logging"
	"github.com/abhisek/mathgenius/internal/respond"
	"github.com/abhisek/mathgenius/internal/store"
	"github.com/abhisek/mathgenius/internal/tutor"
)

// Service exposes the tutoring operations to the surrounding application.
type Service struct {
	profiles store.ProfileRepo
	sessions store.SessionRepo
	events   store.EventRepo
	catalog  []tutor.Personality
	analyzer *analyzer.Analyzer
	synth    *respond.Synthesizer
	log      *logging.Logger

	// Sessions are single-writer aggregates. Without the keyed mutex two
	// read-modify-write cycles on the same session can interleave and
	// silently drop one of them.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Options configures a Service.
type Options struct {
	Profiles    store.ProfileRepo
	Sessions    store.SessionRepo
	Events      store.EventRepo
	Catalog     []tutor.Personality
	Synthesizer *respond.Synthesizer
	Log         *logging.Logger
}

// New creates a tutoring service. A nil catalog falls back to the built-in
// one; a nil synthesizer gets a time-seeded generator.
func New(opts Options) *Service {
	list := opts.Catalog
	if len(list) == 0 {
		list = catalog.Builtins()
	}
	synth := opts.Synthesizer
	if synth == nil {
		synth = respond.New(time.Now().UnixNano())
	}
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		profiles: opts.Profiles,
		sessions: opts.Sessions,
		events:   opts.Events,
		catalog:  list,
		analyzer: analyzer.New(),
		synth:    synth,
		log:      log,
		locks:    map[string]*sync.Mutex{},
	}
}

// Catalog returns the personality catalog the service was built with.
func (s *Service) Catalog() []tutor.Personality {
	out := make([]tutor.Personality, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Profile loads the student's profile, defaulting when none is stored.
func (s *Service) Profile(ctx context.Context, studentID string) (*tutor.StudentProfile, error) {
	return s.profiles.Get(ctx, studentID)
}

// SaveProfile persists the student profile.
func (s *Service) SaveProfile(ctx context.Context, profile *tutor.StudentProfile) error {
	return s.profiles.Save(ctx, profile)
}

// sessionLock returns the mutex serializing writes for one session id.
func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

// CreateSession starts a tutoring session for a student, selects a
// personality (by name when given and known, otherwise by proficiency
// match), and appends the tutor's greeting. The session is persisted
// best-effort: a storage failure is logged and the in-memory session
// returned, since tutoring continuity beats write durability here.
func (s *Service) CreateSession(ctx context.Context, studentID, personalityName, subject string, objectives []string) (*tutor.Session, error) {
	profile, err := s.profiles.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}

	personality, ok := catalog.ByName(s.catalog, personalityName)
	if !ok {
		personality = catalog.Select(profile, s.catalog)
	}

	session := tutor.NewSession(uuid.New().String(), profile, personality, subject, objectives)

	greeting := s.composeMessage(session, tutor.ContextGreeting, analyzer.Analysis{
		Context:    tutor.ContextGreeting,
		Emotion:    tutor.EmotionNeutral,
		Confidence: 1.0,
	})
	updated := analytics.ApplyMessage(session, greeting, s.analyzer)
	session = &updated

	if err := s.sessions.Save(ctx, session); err != nil {
		s.log.Error("save new session", "sessionId", session.ID, "err", err)
	}
	if err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: session.ID,
		Action:    "start",
	}); err != nil {
		s.log.Error("append start event", "sessionId", session.ID, "err", err)
	}

	s.log.Info("session created",
		"sessionId", session.ID, "studentId", studentID, "tutor", personality.Name)
	return session, nil
}

// GenerateResponse runs the analyze → select → synthesize pipeline for one
// student message and returns the tutor's reply. It does not mutate or
// persist the session; callers fold both messages in via AddMessage.
// contextOverride forces the conversational context when non-empty.
func (s *Service) GenerateResponse(session *tutor.Session, studentMessage string, contextOverride tutor.Context) tutor.Message {
	a := s.analyzer.Analyze(studentMessage)
	ctx := a.Context
	if contextOverride != "" {
		ctx = contextOverride
	}
	return s.composeMessage(session, ctx, a)
}

func (s *Service) composeMessage(session *tutor.Session, ctx tutor.Context, a analyzer.Analysis) tutor.Message {
	strategy := respond.SelectStrategy(session, ctx, a)
	content := s.synth.Synthesize(session, ctx, strategy, a)

	return tutor.Message{
		ID:                 uuid.New().String(),
		Content:            content,
		FromTutor:          true,
		Timestamp:          time.Now(),
		Context:            ctx,
		Confidence:         1.0,
		SuggestedResponses: respond.Suggestions(ctx),
		Metadata: map[string]any{
			"strategy": string(strategy),
			"analysis": a,
		},
	}
}

// NewStudentMessage wraps raw student text in a Message carrying its
// analysis result.
func (s *Service) NewStudentMessage(content string) tutor.Message {
	a := s.analyzer.Analyze(content)
	return tutor.Message{
		ID:         uuid.New().String(),
		Content:    content,
		FromTutor:  false,
		Timestamp:  time.Now(),
		Context:    a.Context,
		Confidence: a.Confidence,
	}
}

// AddMessage folds a message into the session and persists the result.
// Storage failures are logged and the updated in-memory session returned.
func (s *Service) AddMessage(ctx context.Context, session *tutor.Session, msg tutor.Message) *tutor.Session {
	l := s.sessionLock(session.ID)
	l.Lock()
	defer l.Unlock()

	updated := analytics.ApplyMessage(session, msg, s.analyzer)
	if err := s.sessions.Save(ctx, &updated); err != nil {
		s.log.Error("save session", "sessionId", session.ID, "err", err)
	}
	return &updated
}

// SendMessage is the full turn the UI drives: append the student message,
// generate the tutor reply, append it, persist. Returns the updated
// session and the tutor's reply.
func (s *Service) SendMessage(ctx context.Context, session *tutor.Session, content string) (*tutor.Session, tutor.Message) {
	studentMsg := s.NewStudentMessage(content)
	session = s.AddMessage(ctx, session, studentMsg)
	reply := s.GenerateResponse(session, content, "")
	session = s.AddMessage(ctx, session, reply)
	return session, reply
}

// EndSession marks a session completed and folds its engagement into the
// student profile's running average, session count and per-topic progress.
// An unknown session id returns (nil, nil).
func (s *Service) EndSession(ctx context.Context, sessionID string) (*tutor.Session, error) {
	l := s.sessionLock(sessionID)
	l.Lock()
	defer l.Unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if session.Status == tutor.StatusCompleted {
		return session, nil
	}

	now := time.Now()
	session.Status = tutor.StatusCompleted
	session.EndTime = &now

	profile, err := s.profiles.Get(ctx, session.StudentID)
	if err != nil {
		s.log.Error("load profile at session end", "studentId", session.StudentID, "err", err)
		profile = &session.Profile
	}
	profile.FoldSessionEngagement(session.Engagement, now)
	for _, topic := range session.Objectives {
		profile.FoldTopicProgress(topic, session.Engagement, now)
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		s.log.Error("save profile", "studentId", profile.StudentID, "err", err)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		s.log.Error("save ended session", "sessionId", session.ID, "err", err)
	}
	if err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       session.ID,
		Action:          "end",
		TotalMessages:   len(session.Messages),
		StudentMessages: session.StudentMessageCount(),
		Engagement:      session.Engagement,
		DurationSecs:    int(session.Duration().Seconds()),
	}); err != nil {
		s.log.Error("append end event", "sessionId", session.ID, "err", err)
	}

	s.log.Info("session ended",
		"sessionId", session.ID, "messages", len(session.Messages), "engagement", session.Engagement)
	return session, nil
}
