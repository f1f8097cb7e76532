package llm

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-insights/internal/types"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient implements Client over the OpenAI chat completions API
type OpenAIClient struct {
	client *openai.Client
	config *Config
}

// NewOpenAIClient creates a new OpenAI client. Each Generate makes exactly one
// request; the SDK's automatic retries are switched off. Extra request options
// (base URL, HTTP client) are appended after the defaults.
func NewOpenAIClient(config *Config, apiKey string, opts ...option.RequestOption) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	reqOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	client := openai.NewClient(reqOpts...)

	return &OpenAIClient{
		client: &client,
		config: config.Normalized(),
	}, nil
}

// Generate sends a system message and a user message and returns the first choice
func (c *OpenAIClient) Generate(ctx context.Context, systemRole, prompt string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if systemRole != "" {
		messages = append(messages, openai.SystemMessage(systemRole))
	}
	messages = append(messages, openai.UserMessage(prompt))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       openai.ChatModel(c.config.Model),
		Temperature: openai.Float(c.config.Temperature),
		MaxTokens:   openai.Int(int64(c.config.MaxTokens)),
	})
	if err != nil {
		return "", &APICallError{Provider: ProviderOpenAI, Model: c.config.Model, Cause: err}
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return completion.Choices[0].Message.Content, nil
}

// Enabled always reports true for a constructed network client
func (c *OpenAIClient) Enabled() bool { return true }

// Provider returns ProviderOpenAI
func (c *OpenAIClient) Provider() Provider { return ProviderOpenAI }

// Model returns the configured model name
func (c *OpenAIClient) Model() string { return c.config.Model }

// Status reports an active client
func (c *OpenAIClient) Status() types.AdvisoryStatus {
	return activeStatus(ProviderOpenAI, c.config.Model)
}

// Close is a no-op; the OpenAI client holds no resources
func (c *OpenAIClient) Close() error { return nil }
