package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/singhsaravjit/portfolio-assistant/internal/common"
	"github.com/singhsaravjit/portfolio-assistant/internal/observability"
)

var ErrSessionNotFound = errors.New("session not found")

// EventSink receives engagement events for external analytics. A nil
// sink is valid and drops everything.
type EventSink interface {
	PublishEvent(ctx context.Context, eventType, sessionID string) error
}

// Manager owns the live sessions. Sessions exist only in memory: when
// one is torn down (explicitly or by the idle janitor) its history is
// gone, which is exactly the retention the product wants.
type Manager struct {
	responder Responder
	clock     Clock
	timing    Timing
	idleTTL   time.Duration
	sink      EventSink

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(responder Responder, clock Clock, timing Timing, idleTTL time.Duration, sink EventSink) *Manager {
	return &Manager{
		responder: responder,
		clock:     clock,
		timing:    timing,
		idleTTL:   idleTTL,
		sink:      sink,
		sessions:  make(map[string]*Session),
	}
}

// CreateSession starts a new conversation, seeds the welcome message,
// and arms the first-visit auto-open timer.
func (m *Manager) CreateSession(ctx context.Context) (*Session, error) {
	id, err := common.NewULID()
	if err != nil {
		return nil, err
	}

	s := NewSession(id, m.responder, m.clock, m.timing)
	s.MaybeAutoOpen()

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.publish(ctx, "session_started", id)
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Submit relays an utterance into the session and reports the event.
func (m *Manager) Submit(ctx context.Context, id, text string) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	s.Submit(text)
	m.publish(ctx, "message_submitted", id)
	return nil
}

// Remove tears the session down and forgets it.
func (m *Manager) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.Teardown()
	m.publish(ctx, "session_ended", id)
	return nil
}

// RunJanitor tears down sessions idle past the TTL until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, sweep time.Duration) {
	if m.idleTTL <= 0 || sweep <= 0 {
		return
	}
	ticker := time.NewTicker(sweep)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.sweepIdle(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (m *Manager) sweepIdle(ctx context.Context) {
	cutoff := m.clock.Now().Add(-m.idleTTL)

	m.mu.RLock()
	var expired []string
	for id, s := range m.sessions {
		if s.LastActive().Before(cutoff) {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()

	for _, id := range expired {
		if err := m.Remove(ctx, id); err == nil {
			observability.Logger().Info("idle session expired", "session_id", id)
		}
	}
}

func (m *Manager) publish(ctx context.Context, eventType, sessionID string) {
	if m.sink == nil {
		return
	}
	if err := m.sink.PublishEvent(ctx, eventType, sessionID); err != nil {
		observability.LoggerFromContext(ctx).Warn("event publish failed",
			"event", eventType, "session_id", sessionID, "error", err)
	}
}
