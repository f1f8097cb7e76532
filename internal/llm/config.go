// Package llm provides the advisory model configuration and client abstractions.
// A Client is either backed by a network provider or disabled; callers depend
// only on the interface.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is the OpenAI chat completions provider
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Default generation settings
const (
	DefaultOpenAIModel = "gpt-3.5-turbo"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1500
)

// Config holds the advisory model configuration. Enabled is the operator's
// switch; a client is only live when it is set and an API key is present.
type Config struct {
	Enabled     bool
	Provider    Provider
	Model       string
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns the default configuration (OpenAI)
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		Model:       DefaultOpenAIModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// DefaultModel returns the default model name for a provider
func DefaultModel(provider Provider) string {
	switch provider {
	case ProviderGemini:
		return DefaultGeminiModel
	default:
		return DefaultOpenAIModel
	}
}

// Normalized returns a copy with unknown providers mapped to OpenAI and
// unset fields filled with defaults.
func (c *Config) Normalized() *Config {
	out := *c
	if out.Provider != ProviderGemini {
		out.Provider = ProviderOpenAI
	}
	if out.Model == "" {
		out.Model = DefaultModel(out.Provider)
	}
	if out.Temperature <= 0 {
		out.Temperature = DefaultTemperature
	}
	if out.MaxTokens <= 0 {
		out.MaxTokens = DefaultMaxTokens
	}
	return &out
}

// WithModel returns a new Config with a specific model
func (c *Config) WithModel(model string) *Config {
	out := *c
	out.Model = model
	return &out
}
