package solo

import (
	"context"
	"errors"
	"testing"

	conversationRepo "lightfield/database/repository/conversation"
	"lightfield/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStreamer struct {
	chunks     []string
	err        error
	gotHistory []ChatTurn
}

func (f *fakeStreamer) StreamChat(_ context.Context, history []ChatTurn, _ string, onChunk func(string) error) error {
	f.gotHistory = history
	for _, c := range f.chunks {
		if err := onChunk(c); err != nil {
			return err
		}
	}
	return f.err
}

type memContextStore struct {
	turns map[string][]ChatTurn
}

func (m *memContextStore) Get(_ context.Context, sessionID string) ([]ChatTurn, error) {
	return m.turns[sessionID], nil
}

func (m *memContextStore) Append(_ context.Context, sessionID string, turns ...ChatTurn) error {
	existing := append(m.turns[sessionID], turns...)
	if len(existing) > historyWindow {
		existing = existing[len(existing)-historyWindow:]
	}
	m.turns[sessionID] = existing
	return nil
}

type memConversationRepo struct {
	messages map[string][]models.ChatMessage
	records  []*models.ChatRecord
}

func (m *memConversationRepo) AppendMessages(sessionID string, msgs ...models.ChatMessage) error {
	m.messages[sessionID] = append(m.messages[sessionID], msgs...)
	return nil
}

func (m *memConversationRepo) GetBySessionID(string) (*models.Conversation, error) { return nil, nil }

func (m *memConversationRepo) RecordExchange(rec *models.ChatRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *memConversationRepo) Analytics() (*conversationRepo.ChatAnalytics, error) { return nil, nil }

func (m *memConversationRepo) SessionsPerDay(int) ([]conversationRepo.DayCount, error) {
	return nil, nil
}

func newTestService(streamer *fakeStreamer) (*Service, *memConversationRepo) {
	conv := &memConversationRepo{messages: make(map[string][]models.ChatMessage)}
	return &Service{
		AI:            streamer,
		Context:       &memContextStore{turns: make(map[string][]ChatTurn)},
		Conversations: conv,
	}, conv
}

func TestResolveSessionMintsWhenEmpty(t *testing.T) {
	svc, _ := newTestService(&fakeStreamer{})
	id := svc.ResolveSession("")
	assert.NotEmpty(t, id)
	assert.Equal(t, "existing", svc.ResolveSession("existing"))
}

func TestChatStreamsAndPersists(t *testing.T) {
	streamer := &fakeStreamer{chunks: []string{"Hello", ", how can", " I help?"}}
	svc, conv := newTestService(streamer)

	var got []string
	err := svc.Chat(context.Background(), "s1", "Hi", func(chunk string) error {
		got = append(got, chunk)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", ", how can", " I help?"}, got)

	require.Len(t, conv.messages["s1"], 2)
	assert.Equal(t, models.RoleUser, conv.messages["s1"][0].Role)
	assert.Equal(t, "Hi", conv.messages["s1"][0].Content)
	assert.Equal(t, "Hello, how can I help?", conv.messages["s1"][1].Content)

	require.Len(t, conv.records, 1)
	assert.Equal(t, "s1", conv.records[0].SessionID)
	assert.Equal(t, "Hello, how can I help?", conv.records[0].AIResponse)
}

func TestChatInjectsHistory(t *testing.T) {
	streamer := &fakeStreamer{chunks: []string{"ok"}}
	svc, _ := newTestService(streamer)

	require.NoError(t, svc.Chat(context.Background(), "s1", "first", func(string) error { return nil }))
	require.NoError(t, svc.Chat(context.Background(), "s1", "second", func(string) error { return nil }))

	require.Len(t, streamer.gotHistory, 2)
	assert.Equal(t, "first", streamer.gotHistory[0].Content)
	assert.Equal(t, models.RoleAssistant, streamer.gotHistory[1].Role)
}

func TestChatHistoryWindowCapped(t *testing.T) {
	streamer := &fakeStreamer{chunks: []string{"ok"}}
	svc, _ := newTestService(streamer)

	for i := 0; i < 8; i++ {
		require.NoError(t, svc.Chat(context.Background(), "s1", "msg", func(string) error { return nil }))
	}
	assert.Len(t, streamer.gotHistory, historyWindow)
}

func TestChatPropagatesStreamError(t *testing.T) {
	streamer := &fakeStreamer{err: errors.New("upstream closed")}
	svc, conv := newTestService(streamer)

	err := svc.Chat(context.Background(), "s1", "Hi", func(string) error { return nil })
	require.Error(t, err)
	// Failed turns are not persisted.
	assert.Empty(t, conv.messages["s1"])
	assert.Empty(t, conv.records)
}
