package client

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Message roles in the chat transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// SeedGreeting opens every conversation. It is local only and never sent
// to the backend.
const SeedGreeting = "Hello! I'm Solo, LightField's legal assistant. How can I help you today?"

// apologyMessage replaces the assistant placeholder when the stream fails.
const apologyMessage = "I apologize, but I'm having trouble connecting right now. Please try again in a moment."

// SuggestedQuestions are the canned openers shown before the first message.
var SuggestedQuestions = []string{
	"What services does LightField offer?",
	"How do I book a consultation?",
	"What areas of law do you practice?",
	"How much does a consultation cost?",
}

// Message is one transcript entry.
type Message struct {
	Role    string
	Content string
}

// ChatStreamer is the slice of the API client the chat session needs.
type ChatStreamer interface {
	Chat(ctx context.Context, message, sessionID string, onChunk func(chunk string)) (string, error)
}

// ChatSession holds a conversation transcript and streams assistant replies
// into it chunk by chunk. The session id starts out client-generated and is
// replaced at most once by a server-assigned id; after that the server value
// is pinned for the lifetime of the session.
type ChatSession struct {
	api ChatStreamer

	mu             sync.Mutex
	messages       []Message
	sessionID      string
	serverAssigned bool
	streaming      bool
}

// NewChatSession seeds the transcript with the greeting and mints a
// provisional session id.
func NewChatSession(api ChatStreamer) *ChatSession {
	return &ChatSession{
		api:       api,
		messages:  []Message{{Role: RoleAssistant, Content: SeedGreeting}},
		sessionID: provisionalSessionID(),
	}
}

func provisionalSessionID() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("solo-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("solo-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}

// Send submits one user message and streams the reply into the transcript.
// Blank input is a no-op, as is a send while a reply is still streaming.
// Transport failures are absorbed into an apology message; Send never
// returns an error to its caller.
func (s *ChatSession) Send(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.mu.Lock()
	if s.streaming {
		s.mu.Unlock()
		return
	}
	s.streaming = true
	s.messages = append(s.messages,
		Message{Role: RoleUser, Content: text},
		Message{Role: RoleAssistant, Content: ""},
	)
	sessionID := s.sessionID
	s.mu.Unlock()

	var accumulated strings.Builder
	serverID, err := s.api.Chat(ctx, text, sessionID, func(chunk string) {
		accumulated.WriteString(chunk)
		s.replaceLast(accumulated.String())
	})

	s.mu.Lock()
	// The first server-assigned id wins; later header values are ignored.
	if !s.serverAssigned && serverID != "" {
		s.sessionID = serverID
		s.serverAssigned = true
	}
	// The apology must land before the streaming flag clears, otherwise a
	// concurrent Send could slot in a fresh placeholder and lose it to the
	// apology write.
	if err != nil {
		s.messages[len(s.messages)-1] = Message{Role: RoleAssistant, Content: apologyMessage}
	}
	s.streaming = false
	s.mu.Unlock()
}

func (s *ChatSession) replaceLast(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[len(s.messages)-1] = Message{Role: RoleAssistant, Content: content}
}

// Messages returns a copy of the transcript.
func (s *ChatSession) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// SessionID returns the id that will accompany the next message.
func (s *ChatSession) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// Streaming reports whether a reply is currently being received.
func (s *ChatSession) Streaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaming
}

// ShowSuggestions reports whether the canned questions should be visible.
// They appear only while the transcript is exactly the seed greeting and
// disappear for good after the first user message.
func (s *ChatSession) ShowSuggestions() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages) == 1 &&
		s.messages[0].Role == RoleAssistant &&
		s.messages[0].Content == SeedGreeting
}
