package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Blog struct {
		URL      string `yaml:"url" json:"url" jsonschema:"default=https://theguitarman.blogspot.com,description=Blog site URL"`
		PageSize int    `yaml:"page_size" json:"page_size" jsonschema:"default=25,minimum=1,maximum=500,description=Number of posts requested per feed page"`
	} `yaml:"blog" json:"blog" jsonschema:"description=Blog source configuration"`

	Fetch struct {
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP request timeout"`
		Delay     time.Duration `yaml:"delay" json:"delay" jsonschema:"default=500ms,description=Delay between consecutive feed requests"`
		UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=blogarc/1.0,description=User agent for feed requests"`
		MaxPages  int           `yaml:"max_pages" json:"max_pages" jsonschema:"default=1000,minimum=1,description=Hard cap on fetched feed pages"`
	} `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`

	Output struct {
		Dir string `yaml:"dir" json:"dir" jsonschema:"default=posts,description=Directory the archive is written to"`
	} `yaml:"output" json:"output" jsonschema:"description=Output configuration"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// setDefaults fills zero values with built-in defaults
func setDefaults(cfg *Config) {
	if cfg.Blog.URL == "" {
		cfg.Blog.URL = "https://theguitarman.blogspot.com"
	}
	if cfg.Blog.PageSize == 0 {
		cfg.Blog.PageSize = 25
	}

	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Fetch.Delay == 0 {
		cfg.Fetch.Delay = 500 * time.Millisecond
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "blogarc/1.0"
	}
	if cfg.Fetch.MaxPages == 0 {
		cfg.Fetch.MaxPages = 1000
	}

	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "posts"
	}
}

// Validate checks configuration for correctness. Load runs it on every
// loaded file, callers applying their own overrides should run it again.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Blog.URL)
	if err != nil {
		return fmt.Errorf("blog.url is not a valid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("blog.url must be an http(s) url, got %q", c.Blog.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("blog.url has no host: %q", c.Blog.URL)
	}

	if c.Blog.PageSize < 1 || c.Blog.PageSize > 500 {
		return fmt.Errorf("blog.page_size must be between 1 and 500")
	}

	if c.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch.timeout must be at least 1 second")
	}
	if c.Fetch.Delay < 0 {
		return fmt.Errorf("fetch.delay must be non-negative")
	}
	if c.Fetch.MaxPages < 1 {
		return fmt.Errorf("fetch.max_pages must be at least 1")
	}

	return nil
}
