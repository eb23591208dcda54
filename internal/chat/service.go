// Package chat powers the pop-out assistant window: a Gemini-backed responder
// and a persistent transcript history.
package chat

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/deskpin/deskpin/internal/model"
)

// DefaultModel is the chat model used when none is configured
const DefaultModel = "gemini-2.0-flash"

// HistoryWindow limits how many trailing messages are folded into the prompt
const HistoryWindow = 20

// Responder produces an assistant reply for a message given the running
// transcript
type Responder interface {
	Send(ctx context.Context, history []model.ChatMessage, message string) (string, error)
}

// Service answers chat messages with the Gemini API
type Service struct {
	client *genai.Client
	model  string
}

// NewService creates a chat service on an existing GenAI client
func NewService(client *genai.Client, chatModel string) *Service {
	if chatModel == "" {
		chatModel = DefaultModel
	}
	return &Service{
		client: client,
		model:  chatModel,
	}
}

// Send folds the recent transcript into a single prompt and returns the
// model's reply. Empty messages are rejected before any network call.
func (s *Service) Send(ctx context.Context, history []model.ChatMessage, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("message must not be empty")
	}

	prompt := buildPrompt(history, message)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no reply (check safety filters)")
	}

	reply := resp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("model returned an empty reply")
	}
	return reply, nil
}

// buildPrompt assembles the instruction, the trailing transcript window and
// the new message into one text prompt
func buildPrompt(history []model.ChatMessage, message string) string {
	var b strings.Builder
	b.WriteString("You are a concise desktop assistant. Answer the user's latest message, " +
		"using the conversation so far for context.\n")

	start := 0
	if len(history) > HistoryWindow {
		start = len(history) - HistoryWindow
	}
	if start < len(history) {
		b.WriteString("\nConversation so far:\n")
		for _, msg := range history[start:] {
			switch msg.Role {
			case model.ChatRoleAssistant:
				b.WriteString("Assistant: ")
			default:
				b.WriteString("User: ")
			}
			b.WriteString(msg.Content)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nUser: ")
	b.WriteString(message)
	return b.String()
}
