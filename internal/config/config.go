// Package config holds the server configuration: an optional YAML file with
// environment overrides on top. The GOOGLE_API_KEY variable always wins over
// a key from the file, matching how deployments inject the credential.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures the prompt builder server.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// APIKey authenticates against the generative backend.
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL overrides the backend endpoint. Empty uses production.
	BaseURL string `yaml:"base_url,omitempty"`

	// ImageModel and TextModel override the default model names.
	ImageModel string `yaml:"image_model,omitempty"`
	TextModel  string `yaml:"text_model,omitempty"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{Listen: ":8080"}
}

// Load builds the effective configuration: defaults, then the YAML file when
// a path is given, then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if cfg.Listen == "" {
			cfg.Listen = Default().Listen
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.APIKey = key
	}
	if listen := os.Getenv("ARCHITECT_LISTEN"); listen != "" {
		c.Listen = listen
	}
}
