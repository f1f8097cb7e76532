// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-insights/internal/llm"
)

// Defaults
const (
	DefaultPort              = 5000
	DefaultRole              = "software-engineer"
	DefaultExperienceLevel   = "mid"
	DefaultRateLimitRequests = 100
	DefaultRateLimitWindow   = 10 * time.Minute
	DefaultFetchTimeout      = 20 * time.Second
	DefaultCORSOrigin        = "*"
)

// Config represents the configuration that can be loaded from a JSON file
// and overlaid with environment variables. All fields are optional.
type Config struct {
	// Advisory model
	AdvisoryEnabled bool    `json:"advisory_enabled,omitempty"`
	Provider        string  `json:"provider,omitempty"`    // openai or gemini
	Model           string  `json:"model,omitempty"`       // defaults per provider
	Temperature     float64 `json:"temperature,omitempty"` // 0.0-2.0
	MaxTokens       int     `json:"max_tokens,omitempty"`
	OpenAIAPIKey    string  `json:"openai_api_key,omitempty"`
	GeminiAPIKey    string  `json:"gemini_api_key,omitempty"`

	// Analysis defaults
	Role            string `json:"role,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	VocabularyFile  string `json:"vocabulary_file,omitempty"` // YAML override of the built-in tables

	// Server
	Port              int    `json:"port,omitempty"`
	CORSOrigin        string `json:"cors_origin,omitempty"`
	RateLimitEnabled  *bool  `json:"rate_limit_enabled,omitempty"`
	RateLimitRequests int    `json:"rate_limit_requests,omitempty"` // per client per window
	RateLimitWindow   string `json:"rate_limit_window,omitempty"`   // Go duration, e.g. "10m"
	FetchTimeout      string `json:"fetch_timeout,omitempty"`       // Go duration for job URL fetches

	Verbose bool `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	enabled := true
	return Config{
		Provider:          string(llm.ProviderOpenAI),
		Temperature:       llm.DefaultTemperature,
		MaxTokens:         llm.DefaultMaxTokens,
		Role:              DefaultRole,
		ExperienceLevel:   DefaultExperienceLevel,
		Port:              DefaultPort,
		CORSOrigin:        DefaultCORSOrigin,
		RateLimitEnabled:  &enabled,
		RateLimitRequests: DefaultRateLimitRequests,
		RateLimitWindow:   DefaultRateLimitWindow.String(),
		FetchTimeout:      DefaultFetchTimeout.String(),
	}
}

// Load builds the effective configuration: the optional JSON file at path,
// then environment variables, then defaults for anything still unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays environment variables onto the config. Set variables win
// over file values. Where two names exist the first one listed wins:
//
//	ADVISORY_ENABLED, USE_AI   enable the advisory model
//	ADVISORY_PROVIDER          openai or gemini
//	ADVISORY_MODEL, OPENAI_MODEL
//	OPENAI_API_KEY, GEMINI_API_KEY
//	PORT, FRONTEND_URL, VOCABULARY_FILE, RATE_LIMIT_ENABLED
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(keys ...string) (string, bool) {
		for _, key := range keys {
			if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
				return strings.TrimSpace(value), true
			}
		}
		return "", false
	}

	if value, ok := get("ADVISORY_ENABLED", "USE_AI"); ok {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config error: invalid ADVISORY_ENABLED value %q: %w", value, err)
		}
		c.AdvisoryEnabled = enabled
	}
	if value, ok := get("ADVISORY_PROVIDER"); ok {
		c.Provider = strings.ToLower(value)
	}
	if value, ok := get("ADVISORY_MODEL", "OPENAI_MODEL"); ok {
		c.Model = value
	}
	if value, ok := get("OPENAI_API_KEY"); ok {
		c.OpenAIAPIKey = value
	}
	if value, ok := get("GEMINI_API_KEY"); ok {
		c.GeminiAPIKey = value
	}
	if value, ok := get("PORT"); ok {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config error: invalid PORT value %q: %w", value, err)
		}
		c.Port = port
	}
	if value, ok := get("FRONTEND_URL"); ok {
		c.CORSOrigin = value
	}
	if value, ok := get("VOCABULARY_FILE"); ok {
		c.VocabularyFile = value
	}
	if value, ok := get("RATE_LIMIT_ENABLED"); ok {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config error: invalid RATE_LIMIT_ENABLED value %q: %w", value, err)
		}
		c.RateLimitEnabled = &enabled
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch llm.Provider(c.Provider) {
	case "", llm.ProviderOpenAI, llm.ProviderGemini:
	default:
		return fmt.Errorf("config error: unknown provider %q (use openai or gemini)", c.Provider)
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0 and 2")
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("config error: 'max_tokens' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RateLimitRequests < 0 {
		return fmt.Errorf("config error: 'rate_limit_requests' must be non-negative")
	}

	for name, value := range map[string]string{"rate_limit_window": c.RateLimitWindow, "fetch_timeout": c.FetchTimeout} {
		if value == "" {
			continue
		}
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			return fmt.Errorf("config error: '%s' must be a positive duration, got %q", name, value)
		}
	}

	if c.VocabularyFile != "" {
		if _, err := os.Stat(c.VocabularyFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabularyFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.OpenAIAPIKey == "" {
		result.OpenAIAPIKey = defaults.OpenAIAPIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.ExperienceLevel == "" {
		result.ExperienceLevel = defaults.ExperienceLevel
	}
	if result.VocabularyFile == "" {
		result.VocabularyFile = defaults.VocabularyFile
	}
	if result.CORSOrigin == "" {
		result.CORSOrigin = defaults.CORSOrigin
	}
	if result.RateLimitWindow == "" {
		result.RateLimitWindow = defaults.RateLimitWindow
	}
	if result.FetchTimeout == "" {
		result.FetchTimeout = defaults.FetchTimeout
	}

	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.MaxTokens == 0 {
		result.MaxTokens = defaults.MaxTokens
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitRequests == 0 {
		result.RateLimitRequests = defaults.RateLimitRequests
	}
	if result.RateLimitEnabled == nil {
		result.RateLimitEnabled = defaults.RateLimitEnabled
	}

	// AdvisoryEnabled and Verbose cannot distinguish unset from false, so
	// they are never taken from defaults.

	return result
}

// LLMConfig returns the advisory model configuration.
func (c *Config) LLMConfig() *llm.Config {
	cfg := &llm.Config{
		Enabled:     c.AdvisoryEnabled,
		Provider:    llm.Provider(c.Provider),
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	}
	return cfg.Normalized()
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey() string {
	if llm.Provider(c.Provider) == llm.ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// RateLimited reports whether per-client rate limiting is on.
func (c *Config) RateLimited() bool {
	return c.RateLimitEnabled == nil || *c.RateLimitEnabled
}

// RateWindow returns the rate limit window, falling back to the default.
func (c *Config) RateWindow() time.Duration {
	return parseDurationOr(c.RateLimitWindow, DefaultRateLimitWindow)
}

// FetchTimeoutDuration returns the job URL fetch timeout, falling back to the default.
func (c *Config) FetchTimeoutDuration() time.Duration {
	return parseDurationOr(c.FetchTimeout, DefaultFetchTimeout)
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
