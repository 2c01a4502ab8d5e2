package types

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole tags who produced a conversation turn.
type MessageRole string

const (
	RoleHuman MessageRole = "human"
	RoleAI    MessageRole = "ai"
)

// Message is a single turn of a planner conversation.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

func HumanMessage(content string) Message {
	return Message{Role: RoleHuman, Content: content}
}

func AIMessage(content string) Message {
	return Message{Role: RoleAI, Content: content}
}

// PlannerSessionSnapshot is the read-only view of a planner session returned by the API.
type PlannerSessionSnapshot struct {
	ID        uuid.UUID `json:"id"`
	City      string    `json:"city"`
	Interests []string  `json:"interests"`
	Itinerary string    `json:"itinerary"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
