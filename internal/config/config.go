// Package config loads application configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. The token is optional:
// without one, requests run unauthenticated under the public rate limit.
type Config struct {
	GithubToken string        `mapstructure:"GITHUB_TOKEN"`
	OutputFile  string        `mapstructure:"OUTPUT_FILE"`
	QueryDelay  time.Duration `mapstructure:"QUERY_DELAY"`
}

// Load reads configuration from a .env file (if present) and the process
// environment. Flags take precedence over everything loaded here; the
// resolved values are passed into constructors rather than read ad hoc
// further down the call path.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults double as key registrations so AutomaticEnv can fill them.
	v.SetDefault("GITHUB_TOKEN", "")
	v.SetDefault("OUTPUT_FILE", "llm_literature_repos.json")
	v.SetDefault("QUERY_DELAY", "2s")

	// Load from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if file not found

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
