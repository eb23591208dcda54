package model

import (
	"time"
)

// ChatRole identifies the author of a chat message
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage represents a single entry in the assistant window transcript
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation represents the running transcript of the assistant window
type Conversation struct {
	Messages  []ChatMessage `json:"messages"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewConversation creates an empty conversation
func NewConversation() *Conversation {
	return &Conversation{
		Messages:  make([]ChatMessage, 0),
		UpdatedAt: time.Now(),
	}
}

// Append adds a message to the end of the transcript
func (c *Conversation) Append(msg ChatMessage) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
}

// Last returns up to n trailing messages in transcript order
func (c *Conversation) Last(n int) []ChatMessage {
	if n <= 0 || len(c.Messages) == 0 {
		return nil
	}
	if n >= len(c.Messages) {
		out := make([]ChatMessage, len(c.Messages))
		copy(out, c.Messages)
		return out
	}
	out := make([]ChatMessage, n)
	copy(out, c.Messages[len(c.Messages)-n:])
	return out
}

// Clear removes all messages
func (c *Conversation) Clear() {
	c.Messages = c.Messages[:0]
	c.UpdatedAt = time.Now()
}

// IsEmpty reports whether the transcript has no messages
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}
