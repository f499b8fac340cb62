package translation

import (
	"context"
	"errors"
	"strings"

	"lingualeads_backend/platform/config"

	"google.golang.org/genai"
)

// Generator issues a single text-generation request against the external
// model. It is the seam used to substitute fakes in tests.
type Generator interface {
	// Configured reports whether a credential is available. When false,
	// callers must degrade gracefully without attempting a request.
	Configured() bool
	// GenerateText sends one prompt and returns the model's text response.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiClient implements Generator against the Gemini API.
type GeminiClient struct {
	apiKey string
	model  string
}

// NewGeminiClient creates a client for the configured Gemini model.
func NewGeminiClient(cfg config.AIConfig) *GeminiClient {
	return &GeminiClient{
		apiKey: strings.TrimSpace(cfg.GetGeminiAPIKey()),
		model:  cfg.GetGeminiModel(),
	}
}

// Configured reports whether an API key is present.
func (c *GeminiClient) Configured() bool {
	return c.apiKey != ""
}

// GenerateText sends one prompt to the model and returns its raw text output.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty model response")
	}

	return text, nil
}

var _ Generator = (*GeminiClient)(nil)
