package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/eventsphere/internal/feed"
	"github.com/joshua-takyi/eventsphere/internal/helpers"
	"github.com/joshua-takyi/eventsphere/internal/models"
	"github.com/joshua-takyi/eventsphere/internal/theme"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the page state of one visitor.
type Session struct {
	ID    string
	Feed  *feed.Controller
	Theme *theme.Theme

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

type SessionService struct {
	source feed.EventSource
	prefs  models.PreferenceRepo
	derive helpers.Derivers
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionService(source feed.EventSource, prefs models.PreferenceRepo, derive helpers.Derivers, ttl time.Duration, logger *slog.Logger) *SessionService {
	return &SessionService{
		source:   source,
		prefs:    prefs,
		derive:   derive,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create opens a session, restores the theme stored under owner (a new id
// when empty) and loads the event list. A failed list load still returns
// the session; its feed carries the error.
func (ss *SessionService) Create(ctx context.Context, owner string) (*Session, error) {
	id := uuid.New().String()
	if owner == "" {
		owner = id
	}

	s := &Session{
		ID:       id,
		Feed:     feed.NewController(ss.source, ss.derive, ss.logger.With("session_id", id)),
		Theme:    theme.New(ss.prefs, owner, ss.logger),
		lastSeen: ss.now(),
	}
	if err := s.Theme.Initialize(ctx); err != nil {
		ss.logger.Warn("theme not restored", "session_id", id, "error", err)
	}
	if err := s.Feed.FetchEvents(ctx); err != nil {
		ss.logger.Warn("initial event load failed", "session_id", id, "error", err)
	}

	ss.mu.Lock()
	ss.sessions[id] = s
	ss.mu.Unlock()

	ss.sweep()
	return s, nil
}

func (ss *SessionService) Get(id string) (*Session, error) {
	ss.sweep()

	ss.mu.RLock()
	s, ok := ss.sessions[id]
	ss.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(ss.now())
	return s, nil
}

func (ss *SessionService) Len() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.sessions)
}

// sweep drops sessions idle for longer than the ttl.
func (ss *SessionService) sweep() {
	if ss.ttl <= 0 {
		return
	}
	now := ss.now()

	ss.mu.Lock()
	defer ss.mu.Unlock()
	for id, s := range ss.sessions {
		if s.idleSince(now) > ss.ttl {
			s.Feed.Close()
			delete(ss.sessions, id)
			ss.logger.Debug("session expired", "session_id", id)
		}
	}
}

// Close releases every session.
func (ss *SessionService) Close() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for id, s := range ss.sessions {
		s.Feed.Close()
		delete(ss.sessions, id)
	}
}
