// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the bearer token lives in the
// environment or the OS keychain.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"evidencija/cli/internal/xdg"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvBaseURL  = "EVIDENCIJA_BASE_URL"
	EnvTimeout  = "EVIDENCIJA_TIMEOUT"
	EnvLogLevel = "EVIDENCIJA_LOG_LEVEL"
)

const (
	DefaultBaseURL      = "https://xg77afez86.execute-api.eu-north-1.amazonaws.com"
	DefaultUpdatePath   = "/prod/update"
	DefaultQueryPath    = "/prod/evidencija"
	DefaultUpdateOutput = "update_response.json"
	DefaultQueryOutput  = "query_response.json"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	BaseURL   string    `yaml:"base_url"`
	Endpoints Endpoints `yaml:"endpoints"`
	// Timeout bounds a single request; zero leaves it to the transport.
	Timeout  time.Duration `yaml:"timeout"`
	LogLevel string        `yaml:"log_level"`
	Update   Command       `yaml:"update"`
	Query    Command       `yaml:"query"`
}

// Endpoints contains REST API endpoint paths relative to BaseURL.
type Endpoints struct {
	Update string `yaml:"update"` // e.g., "/prod/update"
	Query  string `yaml:"query"`  // e.g., "/prod/evidencija"
}

// Command holds per-command settings.
type Command struct {
	Output string `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Endpoints: Endpoints{
			Update: DefaultUpdatePath,
			Query:  DefaultQueryPath,
		},
		Update: Command{Output: DefaultUpdateOutput},
		Query:  Command{Output: DefaultQueryOutput},
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yml"), nil
}

// Load reads configuration from the default path; missing file returns defaults.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(p)
}

// LoadFile reads configuration from p. Keys absent from the file keep their
// default values; a missing file returns defaults.
func LoadFile(p string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", p, err)
	}
	return c, nil
}

// Save writes configuration to the default path.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(p, c)
}

// SaveFile writes configuration with 0600 permissions, creating the parent
// directory when needed.
func SaveFile(p string, c Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// ApplyEnv overlays environment overrides read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvBaseURL)); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	return nil
}

// Validate checks that the endpoint settings can form request URLs.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base_url %q: missing host", c.BaseURL)
	}
	for name, p := range map[string]string{"endpoints.update": c.Endpoints.Update, "endpoints.query": c.Endpoints.Query} {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("invalid %s %q: must start with /", name, p)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", c.Timeout)
	}
	return nil
}

// UpdateURL returns the absolute URL of the update endpoint.
func (c Config) UpdateURL() string {
	return strings.TrimRight(c.BaseURL, "/") + c.Endpoints.Update
}

// QueryURL returns the absolute URL of the query endpoint.
func (c Config) QueryURL() string {
	return strings.TrimRight(c.BaseURL, "/") + c.Endpoints.Query
}
