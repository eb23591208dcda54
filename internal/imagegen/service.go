// Package imagegen generates images from text prompts through the Gemini API.
package imagegen

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the image-capable Gemini model used when none is configured
const DefaultModel = "gemini-2.0-flash-preview-image-generation"

// GeneratedImage is one image returned by the backend
type GeneratedImage struct {
	Data     []byte
	MIMEType string
}

// Generator produces an image for a text prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (GeneratedImage, error)
}

// Service generates images with the Gemini API
type Service struct {
	client *genai.Client
	model  string
}

// NewService creates an image generation service on an existing GenAI client
func NewService(client *genai.Client, model string) *Service {
	if model == "" {
		model = DefaultModel
	}
	return &Service{
		client: client,
		model:  model,
	}
}

// Generate asks the model for an image and returns the first inline image
// part of the response. Empty prompts are rejected before any network call.
func (s *Service) Generate(ctx context.Context, prompt string) (GeneratedImage, error) {
	if strings.TrimSpace(prompt) == "" {
		return GeneratedImage{}, fmt.Errorf("prompt must not be empty")
	}

	// Image models require both modalities to be requested
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
	if err != nil {
		return GeneratedImage{}, fmt.Errorf("image generation failed: %w", err)
	}

	return extractImage(resp)
}

// extractImage pulls the first inline-data part out of a generation response
func extractImage(resp *genai.GenerateContentResponse) (GeneratedImage, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return GeneratedImage{}, fmt.Errorf("model returned no candidates (check safety filters)")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return GeneratedImage{
				Data:     part.InlineData.Data,
				MIMEType: part.InlineData.MIMEType,
			}, nil
		}
	}

	return GeneratedImage{}, fmt.Errorf("model response contained no image data")
}

// FileExtension maps the image MIME type to a file extension for saving
func (img GeneratedImage) FileExtension() string {
	switch img.MIMEType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
