package chat

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/briksiq/core/internal/config"
	"github.com/briksiq/core/internal/logger"
	"github.com/briksiq/core/internal/models"
)

// Session-level errors
var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message exceeds maximum length")
	ErrSessionClosed  = errors.New("chat session is closed")
)

// Session holds an append-only chat transcript and schedules simulated
// assistant replies. Each user message gets exactly one reply after the
// configured delay; replies are keyed by the user message ID so a pending
// reply can be cancelled before it lands. Timer callbacks run off the caller
// goroutine, so all transcript access is mutex-guarded.
type Session struct {
	responder *Responder
	log       *logger.Logger
	delay     time.Duration
	maxLen    int

	mu       sync.Mutex
	messages []models.ChatMessage
	pending  map[string]*time.Timer
	closed   bool
}

// NewSession creates a chat session seeded with the assistant greeting.
func NewSession(responder *Responder, cfg config.ChatConfig, log *logger.Logger) *Session {
	s := &Session{
		responder: responder,
		log:       log,
		delay:     cfg.ReplyDelay,
		maxLen:    cfg.MaxMessageLen,
		pending:   make(map[string]*time.Timer),
	}
	s.messages = append(s.messages, models.ChatMessage{
		ID:        uuid.New().String(),
		Text:      Greeting,
		IsUser:    false,
		Timestamp: time.Now().UTC(),
	})
	return s
}

// Send appends the user message immediately and schedules the assistant
// reply. It returns the appended user message. Blank input and input over the
// configured maximum length are rejected without touching the transcript.
func (s *Session) Send(text string) (models.ChatMessage, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}
	// The cap is per character, not per byte.
	if n := utf8.RuneCountInString(trimmed); n > s.maxLen {
		return models.ChatMessage{}, fmt.Errorf("%w: %d > %d", ErrMessageTooLong, n, s.maxLen)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.ChatMessage{}, ErrSessionClosed
	}

	msg := models.ChatMessage{
		ID:        uuid.New().String(),
		Text:      trimmed,
		IsUser:    true,
		Timestamp: s.nextTimestamp(),
	}
	s.messages = append(s.messages, msg)

	s.log.Debug("User message appended", map[string]interface{}{
		"message_id": msg.ID,
		"intent":     string(s.responder.Classify(trimmed)),
	})

	// The reply classifies the message as sent, even if more messages arrive
	// while it is pending.
	s.pending[msg.ID] = time.AfterFunc(s.delay, func() {
		s.deliverReply(msg.ID, trimmed)
	})

	return msg, nil
}

// deliverReply appends the assistant reply for the given user message, unless
// the reply was cancelled or the session closed while it was pending.
func (s *Session) deliverReply(messageID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if _, ok := s.pending[messageID]; !ok {
		// Cancelled while pending.
		return
	}
	delete(s.pending, messageID)

	reply := models.ChatMessage{
		ID:        uuid.New().String(),
		Text:      s.responder.Respond(text),
		IsUser:    false,
		Timestamp: s.nextTimestamp(),
	}
	s.messages = append(s.messages, reply)

	s.log.Debug("Assistant reply appended", map[string]interface{}{
		"reply_to": messageID,
	})
}

// CancelPending invalidates the scheduled reply for the given user message.
// It reports whether a reply was actually pending.
func (s *Session) CancelPending(messageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.pending[messageID]
	if !ok {
		return false
	}
	timer.Stop()
	delete(s.pending, messageID)
	return true
}

// PendingReplies returns the number of replies not yet delivered.
func (s *Session) PendingReplies() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Messages returns a copy of the transcript in append order.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Close cancels every pending reply and rejects further sends. Closing an
// already closed session is a no-op.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
}

// nextTimestamp returns a timestamp strictly after the last transcript entry,
// keeping the transcript strictly increasing even when appends land within
// the clock's resolution. Callers must hold s.mu.
func (s *Session) nextTimestamp() time.Time {
	ts := time.Now().UTC()
	if n := len(s.messages); n > 0 {
		if last := s.messages[n-1].Timestamp; !ts.After(last) {
			ts = last.Add(time.Nanosecond)
		}
	}
	return ts
}
