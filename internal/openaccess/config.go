package openaccess

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the documented Open Access API endpoint
	DefaultBaseURL = "https://api.si.edu/openaccess/api/v1.0"

	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client to the API
	DefaultUserAgent = "smithsonian-mcp-server/1.0 (github.com/AlexLin1234/smithsonian-mcp-server)"
)

// Config holds Open Access API connection settings. It is built once at
// process start and never mutated afterwards.
type Config struct {
	// APIKey is the api.data.gov key sent with every request
	APIKey string

	// BaseURL is the API endpoint
	BaseURL string

	// Timeout bounds each API request
	Timeout time.Duration

	// UserAgent identifies the client to the API
	UserAgent string
}

// fileConfig is the YAML shape of an optional config file. Timeout is a
// string so durations can be written as "45s" rather than nanoseconds.
type fileConfig struct {
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Timeout   string `yaml:"timeout"`
	UserAgent string `yaml:"user_agent"`
}

// LoadConfig loads configuration from the environment, optionally layered
// on top of a YAML file named by SMITHSONIAN_CONFIG. Environment variables
// always win over file values. A missing API key is a fatal configuration
// error: the server cannot serve any tool without it.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}

	if path := os.Getenv("SMITHSONIAN_CONFIG"); path != "" {
		if err := applyConfigFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if key := os.Getenv("SMITHSONIAN_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if baseURL := os.Getenv("SMITHSONIAN_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if t := os.Getenv("SMITHSONIAN_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if ua := os.Getenv("SMITHSONIAN_USER_AGENT"); ua != "" {
		cfg.UserAgent = ua
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("SMITHSONIAN_API_KEY environment variable is required. " +
			"Get a free API key at https://api.data.gov/signup/")
	}

	return cfg, nil
}

// applyConfigFile reads a YAML config file into cfg, leaving fields the
// file does not set untouched.
func applyConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.APIKey != "" {
		cfg.APIKey = fc.APIKey
	}
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("parse config file %s: invalid timeout %q: %w", path, fc.Timeout, err)
		}
		cfg.Timeout = d
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}

	return nil
}
