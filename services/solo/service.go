package solo

import (
	"context"
	"strings"
	"time"

	conversationRepo "lightfield/database/repository/conversation"
	"lightfield/models"
	"lightfield/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Streamer generates chat responses chunk by chunk.
type Streamer interface {
	StreamChat(ctx context.Context, history []ChatTurn, message string, onChunk func(string) error) error
}

// ContextStore holds the rolling model context per session.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) ([]ChatTurn, error)
	Append(ctx context.Context, sessionID string, turns ...ChatTurn) error
}

// Service runs Solo chat turns: session resolution, history injection,
// streaming, and post-stream persistence.
type Service struct {
	AI            Streamer
	Context       ContextStore
	Conversations conversationRepo.ConversationRepository
}

// ResolveSession returns the session ID to use for a turn, minting one when
// the client has none yet.
func (s *Service) ResolveSession(sessionID string) string {
	if strings.TrimSpace(sessionID) == "" {
		return uuid.New().String()
	}
	return sessionID
}

// Chat streams a response for one user message. Each generated chunk is passed
// to onChunk as it arrives. After the stream finishes, both sides of the
// exchange are persisted along with an analytics record; persistence failures
// are logged but do not fail a turn the visitor already received.
func (s *Service) Chat(ctx context.Context, sessionID, message string, onChunk func(string) error) error {
	logger := utils.GetLogger()
	started := time.Now()

	history, err := s.Context.Get(ctx, sessionID)
	if err != nil {
		logger.Warn("Failed to load chat context", zap.String("session", sessionID), zap.Error(err))
		history = nil
	}

	var full strings.Builder
	streamErr := s.AI.StreamChat(ctx, history, message, func(chunk string) error {
		full.WriteString(chunk)
		return onChunk(chunk)
	})
	if streamErr != nil {
		return streamErr
	}

	response := full.String()
	elapsed := time.Since(started).Milliseconds()

	if err := s.Context.Append(ctx, sessionID,
		ChatTurn{Role: models.RoleUser, Content: message},
		ChatTurn{Role: models.RoleAssistant, Content: response},
	); err != nil {
		logger.Warn("Failed to update chat context", zap.String("session", sessionID), zap.Error(err))
	}

	now := time.Now()
	if err := s.Conversations.AppendMessages(sessionID,
		models.ChatMessage{Role: models.RoleUser, Content: message, Timestamp: now},
		models.ChatMessage{Role: models.RoleAssistant, Content: response, Timestamp: now},
	); err != nil {
		logger.Warn("Failed to persist conversation", zap.String("session", sessionID), zap.Error(err))
	}

	if err := s.Conversations.RecordExchange(&models.ChatRecord{
		ID:             uuid.New().String(),
		SessionID:      sessionID,
		UserMessage:    message,
		AIResponse:     response,
		ResponseTimeMs: elapsed,
	}); err != nil {
		logger.Warn("Failed to record chat analytics", zap.String("session", sessionID), zap.Error(err))
	}

	return nil
}
