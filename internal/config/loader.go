// Package config loads CLI configuration with the layering pattern:
// built-in defaults, an optional YAML config file, then STAKE_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file searched for under the user config
// directory and the working directory.
const DefaultFileName = "config.yaml"

const envPrefix = "STAKE"

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "https://stake.example.com")
	// Registered with empty defaults so AutomaticEnv picks them up during
	// Unmarshal.
	v.SetDefault("access_token", "")
	v.SetDefault("session_cookie", "")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("rate_limit", 10)
	v.SetDefault("max_concurrent", 8)
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.base_delay", 500*time.Millisecond)
	v.SetDefault("retry.max_delay", 8*time.Second)
	v.SetDefault("retry.jitter", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("output", "table")
}

// Load reads configuration. cfgFile overrides the search path when set;
// a missing config file is not an error, env vars and defaults still
// apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFileName, filepath.Ext(DefaultFileName)))
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "stakeapi"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Write serializes a starter config file, creating parent directories.
// Fails if the target already exists.
func Write(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(dir, "stakeapi", DefaultFileName)
}
