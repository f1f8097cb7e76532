package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/jonathan/resume-insights/internal/types"
	"google.golang.org/api/option"
)

// Status values reported by Client.Status
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// Client is an abstraction over LLM providers
type Client interface {
	// Generate sends one system role and one user prompt and returns the free-text reply
	Generate(ctx context.Context, systemRole, prompt string) (string, error)
	// Enabled reports whether Generate can reach a provider
	Enabled() bool
	// Provider returns the configured provider
	Provider() Provider
	// Model returns the configured model name
	Model() string
	// Status describes whether the client is switched on and configured
	Status() types.AdvisoryStatus
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a client for the configured provider. A disabled config or
// an empty apiKey yields a DisabledClient so no network call is ever attempted.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	config = config.Normalized()

	if !config.Enabled || apiKey == "" {
		return NewDisabledClient(config, apiKey != ""), nil
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewOpenAIClient(config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client. The SDK retries HTTP 503 internally
// and does not expose its call options; the caller's context deadline bounds that.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config.Normalized(),
	}, nil
}

// Generate sends the prompt with the role as system instruction
func (c *GeminiClient) Generate(ctx context.Context, systemRole, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(float32(c.config.Temperature))
	model.SetMaxOutputTokens(int32(c.config.MaxTokens))
	if systemRole != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemRole)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &APICallError{Provider: ProviderGemini, Model: c.config.Model, Cause: err}
	}

	return extractTextFromResponse(resp)
}

// Enabled always reports true for a constructed network client
func (c *GeminiClient) Enabled() bool { return true }

// Provider returns ProviderGemini
func (c *GeminiClient) Provider() Provider { return ProviderGemini }

// Model returns the configured model name
func (c *GeminiClient) Model() string { return c.config.Model }

// Status reports an active client
func (c *GeminiClient) Status() types.AdvisoryStatus {
	return activeStatus(ProviderGemini, c.config.Model)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response: %w", ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response: %w", ErrEmptyResponse)
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response: %w", ErrEmptyResponse)
	}

	return strings.Join(parts, ""), nil
}

func activeStatus(provider Provider, model string) types.AdvisoryStatus {
	return types.AdvisoryStatus{
		Enabled:    true,
		Configured: true,
		Provider:   string(provider),
		Model:      model,
		Status:     StatusActive,
	}
}
