// golos-labs/golos-bot/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Re-assign os.UserHomeDir to a variable so we can mock it in tests.
var osUserHomeDir = os.UserHomeDir

// Path returns the full path to the config file in ~/.golos.
func Path() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, ".golos", "config.json"), nil
}

// KeywordsPath returns the path of the optional crisis-keyword override
// file next to the config file.
func KeywordsPath() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, ".golos", "keywords.yaml"), nil
}

// Load reads the configuration file, creating it with defaults on first
// run, then applies environment variable overrides on top.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := writeDefault(path, cfg); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("could not read config file %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not decode config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not apply environment overrides: %w", err)
	}

	return cfg, nil
}

// Validate reports configuration problems that must stop the process.
// Per-message failures are handled later; missing credentials are fatal.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return errors.New("telegram token is not set (config file or TELEGRAM_TOKEN)")
	}
	if c.OpenAI.APIKey == "" && c.STT.Backend != "google" {
		return errors.New("openai api key is not set (config file or OPENAI_API_KEY)")
	}
	switch c.STT.Backend {
	case "openai", "google":
	default:
		return fmt.Errorf("unknown stt backend %q", c.STT.Backend)
	}
	return nil
}

func writeDefault(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("could not write default config: %w", err)
	}
	return nil
}
