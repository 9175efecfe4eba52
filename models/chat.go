package models

import "time"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn in a Solo conversation.
type ChatMessage struct {
	Role      string    `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Conversation is the append-only transcript for one chat session.
type Conversation struct {
	ID        string        `bson:"id" json:"id"`
	SessionID string        `bson:"session_id" json:"session_id"`
	Messages  []ChatMessage `bson:"messages" json:"messages"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// ChatRecord is a per-exchange analytics row.
type ChatRecord struct {
	ID             string    `bson:"id" json:"id"`
	SessionID      string    `bson:"session_id" json:"session_id"`
	UserMessage    string    `bson:"user_message" json:"user_message"`
	AIResponse     string    `bson:"ai_response" json:"ai_response"`
	ResponseTimeMs int64     `bson:"response_time_ms" json:"response_time_ms"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
