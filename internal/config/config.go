// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
)

// referenceDateLayout is the accepted form for the duration-math anchor.
const referenceDateLayout = "January 2006"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume         string `json:"resume,omitempty"`          // Path to resume file (PDF, DOCX, or plain text)
	MarketDir      string `json:"market_dir,omitempty"`      // Directory with per-level market JSON (overrides embedded data)
	CurriculumPath string `json:"curriculum_path,omitempty"` // Curriculum JSON file (overrides embedded data)
	Output         string `json:"output,omitempty"`          // Path to write the report JSON to

	// Generative service
	Provider string `json:"provider,omitempty"` // "openai" or "gemini"
	APIKey   string `json:"api_key,omitempty"`  // Provider API key

	// Behavior
	ReferenceDate string `json:"reference_date,omitempty"` // "January 2006"-style anchor for duration math
	Port          int    `json:"port,omitempty"`           // HTTP listen port for serve
	Verbose       bool   `json:"verbose,omitempty"`        // Print stage summaries
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Provider != "" {
		switch llm.Provider(c.Provider) {
		case llm.ProviderOpenAI, llm.ProviderGemini:
		default:
			return fmt.Errorf("config error: unknown provider %q (expected openai or gemini)", c.Provider)
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.ReferenceDate != "" {
		if _, err := time.Parse(referenceDateLayout, c.ReferenceDate); err != nil {
			return fmt.Errorf("config error: 'reference_date' must look like %q: %w", referenceDateLayout, err)
		}
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.MarketDir != "" {
		if _, err := os.Stat(c.MarketDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: market data directory not found: %s", c.MarketDir)
		}
	}

	if c.CurriculumPath != "" {
		if _, err := os.Stat(c.CurriculumPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: curriculum file not found: %s", c.CurriculumPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.MarketDir == "" {
		result.MarketDir = defaults.MarketDir
	}
	if result.CurriculumPath == "" {
		result.CurriculumPath = defaults.CurriculumPath
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ReferenceDate == "" {
		result.ReferenceDate = defaults.ReferenceDate
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveAPIKey fills the API key from the provider's conventional environment
// variable when neither flag nor config supplied one.
func (c *Config) ResolveAPIKey() {
	if c.APIKey != "" {
		return
	}
	switch llm.Provider(c.Provider) {
	case llm.ProviderGemini:
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	default:
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}
