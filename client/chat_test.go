package client

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStreamer struct {
	calls      int
	sentIDs    []string
	chunks     []string
	sessionID  string
	err        error
	duringCall func()
}

func (f *fakeStreamer) Chat(ctx context.Context, message, sessionID string, onChunk func(string)) (string, error) {
	f.calls++
	f.sentIDs = append(f.sentIDs, sessionID)
	if f.duringCall != nil {
		f.duringCall()
	}
	for _, chunk := range f.chunks {
		onChunk(chunk)
	}
	return f.sessionID, f.err
}

func TestChatSessionSeedsGreeting(t *testing.T) {
	s := NewChatSession(&fakeStreamer{})

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleAssistant, msgs[0].Role)
	assert.Equal(t, SeedGreeting, msgs[0].Content)
	assert.NotEmpty(t, s.SessionID())
	assert.True(t, s.ShowSuggestions())
}

func TestChatSessionAccumulatesChunks(t *testing.T) {
	api := &fakeStreamer{chunks: []string{"Our ", "cons", "ultation ", "fee is ₦50,000."}}
	s := NewChatSession(api)

	s.Send(context.Background(), "How much is a consultation?")

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, "How much is a consultation?", msgs[1].Content)
	assert.Equal(t, RoleAssistant, msgs[2].Role)
	assert.Equal(t, "Our consultation fee is ₦50,000.", msgs[2].Content)
	assert.False(t, s.Streaming())
}

func TestChatContentGrowsMonotonically(t *testing.T) {
	api := &snoopStreamer{chunks: []string{"a", "bc", "def", "ghij"}}
	s := NewChatSession(api)
	api.session = s

	prev := 0
	api.afterChunk = func(sess *ChatSession) {
		msgs := sess.Messages()
		current := len(msgs[len(msgs)-1].Content)
		assert.GreaterOrEqual(t, current, prev)
		prev = current
	}

	s.Send(context.Background(), "hello")

	msgs := s.Messages()
	assert.Equal(t, "abcdefghij", msgs[len(msgs)-1].Content)
}

// snoopStreamer inspects the transcript after every chunk is applied.
type snoopStreamer struct {
	chunks     []string
	session    *ChatSession
	afterChunk func(*ChatSession)
}

func (p *snoopStreamer) Chat(ctx context.Context, message, sessionID string, onChunk func(string)) (string, error) {
	for _, chunk := range p.chunks {
		onChunk(chunk)
		if p.afterChunk != nil {
			p.afterChunk(p.session)
		}
	}
	return "", nil
}

func TestChatSessionIDAdoptionIsOneWay(t *testing.T) {
	api := &fakeStreamer{chunks: []string{"ok"}, sessionID: "server-1"}
	s := NewChatSession(api)
	provisional := s.SessionID()

	s.Send(context.Background(), "first")
	assert.Equal(t, "server-1", s.SessionID())
	assert.Equal(t, provisional, api.sentIDs[0])

	// A different header value on a later reply must not displace the
	// first server-assigned id.
	api.sessionID = "server-2"
	s.Send(context.Background(), "second")
	assert.Equal(t, "server-1", s.SessionID())
	assert.Equal(t, "server-1", api.sentIDs[1])

	s.Send(context.Background(), "third")
	assert.Equal(t, "server-1", api.sentIDs[2])
}

func TestChatBlankInputIsNoOp(t *testing.T) {
	api := &fakeStreamer{chunks: []string{"ok"}}
	s := NewChatSession(api)

	s.Send(context.Background(), "")
	s.Send(context.Background(), "   \t\n")

	assert.Zero(t, api.calls)
	assert.Len(t, s.Messages(), 1)
	assert.True(t, s.ShowSuggestions())
}

func TestChatSendWhileStreamingIsNoOp(t *testing.T) {
	api := &fakeStreamer{chunks: []string{"reply"}}
	s := NewChatSession(api)
	api.duringCall = func() {
		// Re-entrant submit while the first reply is still streaming.
		s.Send(context.Background(), "second message")
	}

	s.Send(context.Background(), "first message")

	assert.Equal(t, 1, api.calls)
	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "first message", msgs[1].Content)
}

func TestChatTransportFailureBecomesApology(t *testing.T) {
	api := &fakeStreamer{err: errors.New("connection reset")}
	s := NewChatSession(api)

	s.Send(context.Background(), "hello?")

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, apologyMessage, msgs[2].Content)
	assert.False(t, s.Streaming())

	// The conversation stays usable after a failure.
	api.err = nil
	api.chunks = []string{"back online"}
	s.Send(context.Background(), "still there?")
	msgs = s.Messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, "back online", msgs[4].Content)
}

func TestFailureDoesNotClobberNextReply(t *testing.T) {
	api := &fakeStreamer{err: errors.New("connection reset")}
	s := NewChatSession(api)

	started := make(chan struct{})
	api.duringCall = func() { close(started) }

	// A second sender races the tail of the failing Send: as soon as the
	// streaming flag clears, the apology must already be in place so the
	// new placeholder cannot be overwritten by it.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-started
		for s.Streaming() {
			runtime.Gosched()
		}
		api.duringCall = nil
		api.err = nil
		api.chunks = []string{"recovered"}
		s.Send(context.Background(), "still there?")
	}()

	s.Send(context.Background(), "hello?")
	wg.Wait()

	msgs := s.Messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, apologyMessage, msgs[2].Content)
	assert.Equal(t, "recovered", msgs[4].Content)
}

func TestSuggestionsHiddenAfterFirstMessage(t *testing.T) {
	api := &fakeStreamer{chunks: []string{"hi"}}
	s := NewChatSession(api)
	assert.True(t, s.ShowSuggestions())

	s.Send(context.Background(), SuggestedQuestions[0])
	assert.False(t, s.ShowSuggestions())

	s.Send(context.Background(), "another question")
	assert.False(t, s.ShowSuggestions())
}
