package chat

import (
	"strings"
	"sync"
	"time"
)

// Responder composes assistant replies. Implementations must be pure
// with respect to session state; the session calls Reply outside its
// own lock.
type Responder interface {
	Welcome() string
	Reply(utterance string) string
}

// Timing carries the injectable dialogue delays.
type Timing struct {
	AutoOpenDelay         time.Duration
	ReplyThinkingDelay    time.Duration
	QuickActionRelayDelay time.Duration
}

// State is a copy-out view of a session for consumers.
type State struct {
	Messages      []Message `json:"messages"`
	IsTyping      bool      `json:"is_typing"`
	IsOpen        bool      `json:"is_open"`
	HasAutoOpened bool      `json:"has_auto_opened"`
}

// Session holds one conversation: ordered message history, a pending
// reply counter that drives the typing indicator, panel visibility,
// and the one-shot auto-open flag. All mutation happens under one
// mutex, so user messages append in Submit call order regardless of
// when reply timers fire.
type Session struct {
	id        string
	responder Responder
	clock     Clock
	timing    Timing

	mu            sync.Mutex
	messages      []Message
	pending       int
	isOpen        bool
	hasAutoOpened bool
	closed        bool
	lastActive    time.Time

	timerSeq int
	timers   map[int]Timer
}

func NewSession(id string, responder Responder, clock Clock, timing Timing) *Session {
	s := &Session{
		id:        id,
		responder: responder,
		clock:     clock,
		timing:    timing,
		timers:    make(map[int]Timer),
	}
	s.lastActive = clock.Now()
	s.messages = append(s.messages, Message{
		Role:      RoleAssistant,
		Text:      responder.Welcome(),
		CreatedAt: clock.Now(),
	})
	return s
}

func (s *Session) ID() string { return s.id }

// Submit appends the utterance as a user message immediately and
// schedules the assistant reply after the thinking delay. Empty or
// whitespace-only input is a no-op. Overlapping submissions are
// allowed: each reply resolves after its own delay.
func (s *Session) Submit(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	now := s.clock.Now()
	s.messages = append(s.messages, Message{Role: RoleUser, Text: text, CreatedAt: now})
	s.pending++
	s.lastActive = now

	s.schedule(s.timing.ReplyThinkingDelay, func() {
		s.finishReply(text)
	})
}

func (s *Session) finishReply(utterance string) {
	reply := s.responder.Reply(utterance)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.messages = append(s.messages, Message{Role: RoleAssistant, Text: reply, CreatedAt: s.clock.Now()})
	s.pending--
	s.lastActive = s.clock.Now()
}

// RunQuickAction relays a catalog query into Submit after a short
// delay, simulating manual entry.
func (s *Session) RunQuickAction(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.lastActive = s.clock.Now()
	s.schedule(s.timing.QuickActionRelayDelay, func() {
		s.Submit(query)
	})
}

// MaybeAutoOpen schedules the first-visit auto-open. After the delay,
// the panel opens only if no earlier timer already did; the flag is
// set exactly once for the session's lifetime, so re-invocation is
// harmless.
func (s *Session) MaybeAutoOpen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.hasAutoOpened {
		return
	}
	s.schedule(s.timing.AutoOpenDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.hasAutoOpened {
			return
		}
		s.isOpen = true
		s.hasAutoOpened = true
	})
}

// ToggleOpen flips panel visibility, independent of the auto-open flag.
func (s *Session) ToggleOpen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.isOpen = !s.isOpen
	s.lastActive = s.clock.Now()
}

// ClosePanel hides the panel.
func (s *Session) ClosePanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.isOpen = false
	s.lastActive = s.clock.Now()
}

// Teardown cancels all pending timers and marks the session closed so
// late callbacks cannot mutate it.
func (s *Session) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.pending = 0
}

// State returns a snapshot of the observable session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := make([]Message, len(s.messages))
	copy(msgs, s.messages)
	return State{
		Messages:      msgs,
		IsTyping:      s.pending > 0,
		IsOpen:        s.isOpen,
		HasAutoOpened: s.hasAutoOpened,
	}
}

// LastActive reports the most recent interaction time.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// schedule registers a tracked timer. Caller must hold s.mu.
func (s *Session) schedule(d time.Duration, f func()) {
	s.timerSeq++
	id := s.timerSeq
	t := s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, id)
		closed := s.closed
		s.mu.Unlock()
		if closed {
			return
		}
		f()
	})
	s.timers[id] = t
}
