package config

import (
	"time"

	"github.com/stakeapi/stakeapi-go/pkg/stakeapi"
)

// Config is the CLI-facing configuration. Values layer in order: built-in
// defaults, then the config file, then STAKE_* environment variables, then
// flags.
type Config struct {
	BaseURL       string        `mapstructure:"base_url" yaml:"base_url"`
	AccessToken   string        `mapstructure:"access_token" yaml:"access_token"`
	SessionCookie string        `mapstructure:"session_cookie" yaml:"session_cookie,omitempty"`
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout"`
	RateLimit     int           `mapstructure:"rate_limit" yaml:"rate_limit"`
	MaxConcurrent int64         `mapstructure:"max_concurrent" yaml:"max_concurrent"`
	Retry         RetryConfig   `mapstructure:"retry" yaml:"retry"`
	Logging       LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Output        string        `mapstructure:"output" yaml:"output"`
}

// RetryConfig mirrors stakeapi.RetryPolicy for file and env configuration.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" yaml:"max_attempts"`
	BaseDelay   time.Duration `mapstructure:"base_delay" yaml:"base_delay"`
	MaxDelay    time.Duration `mapstructure:"max_delay" yaml:"max_delay"`
	Jitter      bool          `mapstructure:"jitter" yaml:"jitter"`
}

// LoggingConfig controls CLI log output.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// ClientConfig converts the loaded configuration into the library's
// session configuration.
func (c *Config) ClientConfig() stakeapi.Config {
	return stakeapi.Config{
		BaseURL:       c.BaseURL,
		AccessToken:   c.AccessToken,
		SessionCookie: c.SessionCookie,
		Timeout:       c.Timeout,
		RateLimit:     c.RateLimit,
		MaxConcurrent: c.MaxConcurrent,
		Retry: stakeapi.RetryPolicy{
			MaxAttempts: c.Retry.MaxAttempts,
			BaseDelay:   c.Retry.BaseDelay,
			MaxDelay:    c.Retry.MaxDelay,
			Jitter:      c.Retry.Jitter,
		},
	}
}
