package ai

import (
	"context"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"

	"github.com/taskledger/taskledger/pkg/config"
)

// GeminiClient wraps the official Gemini SDK for structured-output calls.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewGeminiClient(cfg *config.GeminiConfig) (*GeminiClient, error) {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not configured")
	}

	model := "gemini-2.0-flash"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	timeout := 60 * time.Second
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// GenerateJSON sends a prompt to Gemini constrained to the given response
// schema and returns the raw JSON text. The model is forced to emit
// application/json conforming to schema, so the caller only has to
// unmarshal and validate field semantics.
func (c *GeminiClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, schema *genai.Schema) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("gemini client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		Temperature:      genai.Ptr(float32(0.2)),
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var text string
	if result.Candidates[0].Content != nil {
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				text += part.Text
			}
		}
	}

	if text == "" {
		return "", fmt.Errorf("no text in gemini response")
	}

	return text, nil
}

// IsConfigured returns whether the client holds a usable SDK handle.
func (c *GeminiClient) IsConfigured() bool {
	return c != nil && c.client != nil
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}
