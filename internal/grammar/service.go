// Package grammar checks and corrects text through an OpenAI-compatible
// chat-completions endpoint.
package grammar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Defaults for the chat-completions backend
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"

	requestTimeout = 60 * time.Second
)

// systemPrompt instructs the model to return only the corrected text,
// so the response can be shown or copied verbatim.
const systemPrompt = "You are a grammar checker. Correct the spelling, grammar and punctuation " +
	"of the user's text. Preserve the original language, tone and formatting. " +
	"Reply with the corrected text only, without explanations or quotes."

// Checker corrects a piece of text
type Checker interface {
	Check(ctx context.Context, text string) (string, error)
}

// Service calls an OpenAI-compatible /chat/completions endpoint
type Service struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewService creates a grammar service. Empty baseURL or model fall back to
// the defaults; the API key is sent as a bearer token when set.
func NewService(baseURL, apiKey, model string) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Service{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Check sends the text for correction and returns the corrected version.
// Empty input is rejected before any network call.
func (s *Service) Check(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text must not be empty")
	}

	url := strings.TrimSuffix(s.baseURL, "/") + "/chat/completions"
	requestBody, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("grammar API error: %s", result.Error.Message)
		}
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("grammar API returned no choices")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
