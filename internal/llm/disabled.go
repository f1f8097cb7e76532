package llm

import (
	"context"

	"github.com/jonathan/resume-insights/internal/types"
)

// DisabledClient is the Client used when the advisory service is switched off
// or has no credentials. It never performs I/O.
type DisabledClient struct {
	config     *Config
	configured bool
}

// NewDisabledClient creates a DisabledClient that still reports the configured
// provider and model. configured records whether an API key was supplied.
func NewDisabledClient(config *Config, configured bool) *DisabledClient {
	if config == nil {
		config = DefaultConfig()
	}
	return &DisabledClient{config: config.Normalized(), configured: configured}
}

// Generate always fails with ErrDisabled
func (c *DisabledClient) Generate(context.Context, string, string) (string, error) {
	return "", ErrDisabled
}

// Enabled always reports false
func (c *DisabledClient) Enabled() bool { return false }

// Provider returns the configured provider
func (c *DisabledClient) Provider() Provider { return c.config.Provider }

// Model returns the configured model name
func (c *DisabledClient) Model() string { return c.config.Model }

// Status reports the switch and credential state that left the client disabled
func (c *DisabledClient) Status() types.AdvisoryStatus {
	return types.AdvisoryStatus{
		Enabled:    c.config.Enabled,
		Configured: c.configured,
		Provider:   string(c.config.Provider),
		Model:      c.config.Model,
		Status:     StatusDisabled,
	}
}

// Close is a no-op
func (c *DisabledClient) Close() error { return nil }
