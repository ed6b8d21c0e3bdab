// Package config loads application configuration from file, environment
// variables, and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".github-stats"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for settings.
const envPrefix = "GITHUB_STATS"

// Config holds everything the CLI needs to talk to the API.
type Config struct {
	// Token is the API token. Optional; unauthenticated clients get a
	// much smaller rate budget.
	Token string `mapstructure:"token"`
	// BaseURL overrides the API endpoint for GitHub Enterprise.
	// Empty means api.github.com.
	BaseURL string `mapstructure:"base_url"`
}

// Load reads configuration from the given file path, or searches CWD and
// $HOME for a default config file when the path is empty. A missing config
// file is not an error; env vars and defaults apply either way. The plain
// GITHUB_TOKEN variable is honored alongside the prefixed form.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("token", "GITHUB_STATS_TOKEN", "GITHUB_TOKEN")
	v.SetDefault("base_url", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
