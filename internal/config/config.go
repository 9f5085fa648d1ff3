// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// DefaultFeeds are the RSS feeds queried when no feed list is configured.
var DefaultFeeds = []string{
	"https://rss.nytimes.com/services/xml/rss/nyt/US.xml",
	"https://rss.nytimes.com/services/xml/rss/nyt/Technology.xml",
	"https://feeds.content.dowjones.io/public/rss/WSJcomUSBusiness",
}

// Config is the immutable configuration assembled once at startup and passed
// explicitly to each pipeline stage. Values are layered: defaults, then an
// optional JSON file, then environment variables, then CLI flags.
type Config struct {
	// Sources
	Feeds      []string `json:"feeds,omitempty"`
	MaxPerFeed int      `json:"max_per_feed,omitempty" validate:"gte=0"`
	NewsQuery  string   `json:"news_query,omitempty"`

	// Provider credentials. Empty means the provider or source is disabled.
	AnthropicKey   string `json:"-"`
	HuggingFaceKey string `json:"-"`
	GeminiKey      string `json:"-"`
	NewsAPIKey     string `json:"-"`

	// Delivery
	EmailTo      string `json:"email_to,omitempty" validate:"omitempty,email"`
	EmailFrom    string `json:"email_from,omitempty" validate:"omitempty,email"`
	SMTPServer   string `json:"smtp_server,omitempty"`
	SMTPPort     int    `json:"smtp_port,omitempty" validate:"gte=0,lte=65535"`
	SMTPPassword string `json:"-"`

	// Behavior
	DryRun  bool `json:"dry_run,omitempty"`
	Verbose bool `json:"verbose,omitempty"`
}

// Default returns the baseline configuration before any overrides.
func Default() Config {
	return Config{
		Feeds:      append([]string(nil), DefaultFeeds...),
		MaxPerFeed: 5,
		NewsQuery:  "world news",
		SMTPServer: "smtp.gmail.com",
		SMTPPort:   587,
	}
}

// Load loads configuration overrides from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
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

// ApplyEnv fills credential and delivery fields from the environment.
// Environment values override file values but not CLI flags.
func (c *Config) ApplyEnv() {
	setIfPresent(&c.AnthropicKey, "ANTHROPIC_API_KEY")
	setIfPresent(&c.HuggingFaceKey, "HF_KEY")
	setIfPresent(&c.GeminiKey, "GEMINI_API_KEY")
	setIfPresent(&c.NewsAPIKey, "NEWSDATAIO_API_KEY")
	setIfPresent(&c.EmailTo, "EMAIL_TO")
	setIfPresent(&c.EmailFrom, "EMAIL_FROM")
	setIfPresent(&c.SMTPServer, "SMTP_SERVER")
	setIfPresent(&c.SMTPPassword, "SMTP_PASSWORD")

	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.SMTPPort = port
		}
	}
}

// Merge overlays non-zero fields of other onto a copy of c.
func (c Config) Merge(other *Config) Config {
	result := c
	if other == nil {
		return result
	}

	if len(other.Feeds) > 0 {
		result.Feeds = other.Feeds
	}
	if other.MaxPerFeed != 0 {
		result.MaxPerFeed = other.MaxPerFeed
	}
	if other.NewsQuery != "" {
		result.NewsQuery = other.NewsQuery
	}
	if other.EmailTo != "" {
		result.EmailTo = other.EmailTo
	}
	if other.EmailFrom != "" {
		result.EmailFrom = other.EmailFrom
	}
	if other.SMTPServer != "" {
		result.SMTPServer = other.SMTPServer
	}
	if other.SMTPPort != 0 {
		result.SMTPPort = other.SMTPPort
	}
	if other.DryRun {
		result.DryRun = true
	}
	if other.Verbose {
		result.Verbose = true
	}
	return result
}

// Validate checks field formats with the shared validator instance.
// Presence of credentials is deliberately not validated here; a missing key
// disables its provider or source and is reported as a warning instead.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Warnings reports configuration gaps that degrade but do not abort a run.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.HuggingFaceKey == "" {
		warnings = append(warnings, "HF_KEY not set; Hugging Face provider disabled")
	}
	if c.AnthropicKey == "" {
		warnings = append(warnings, "ANTHROPIC_API_KEY not set; Anthropic provider disabled")
	}
	if c.NewsAPIKey == "" {
		warnings = append(warnings, "NEWSDATAIO_API_KEY not set; news API source disabled")
	}
	if !c.DryRun {
		if c.EmailTo == "" {
			warnings = append(warnings, "EMAIL_TO not set; delivery will fail")
		}
		if c.EmailFrom == "" {
			warnings = append(warnings, "EMAIL_FROM not set; delivery will fail")
		}
		if c.SMTPPassword == "" {
			warnings = append(warnings, "SMTP_PASSWORD not set; delivery will fail")
		}
	}
	return warnings
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
