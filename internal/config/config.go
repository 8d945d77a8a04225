package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Translator  TranslatorConfig  `yaml:"translator"`
	Paths       PathsConfig       `yaml:"paths"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type TranslatorConfig struct {
	APIKeys        []string `yaml:"api_keys"`
	Model          string   `yaml:"model"`
	TargetLanguage string   `yaml:"target_language"`
	Proxy          string   `yaml:"proxy"`
	ProbeURL       string   `yaml:"probe_url"`
	RequestDelayMS int      `yaml:"request_delay_ms"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type OutputConfig struct {
	BilingualSuffix      string `yaml:"bilingual_suffix"`
	TranslatedOnlySuffix string `yaml:"translated_only_suffix"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Translator.APIKeys) == 0 {
		return fmt.Errorf("translator.api_keys is required")
	}
	for i, key := range c.Translator.APIKeys {
		if key == "" {
			return fmt.Errorf("translator.api_keys[%d] is empty", i)
		}
	}

	if c.Translator.Model == "" {
		c.Translator.Model = "gemini-2.5-flash"
	}
	if c.Translator.TargetLanguage == "" {
		c.Translator.TargetLanguage = "Simplified Chinese"
	}
	if c.Translator.RequestDelayMS == 0 {
		c.Translator.RequestDelayMS = 500
	}
	if c.Translator.RequestDelayMS < 0 {
		return fmt.Errorf("translator.request_delay_ms must not be negative")
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}

	if c.Output.BilingualSuffix == "" {
		c.Output.BilingualSuffix = "_中文"
	}
	if c.Output.TranslatedOnlySuffix == "" {
		c.Output.TranslatedOnlySuffix = "_仅中文"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	// One at a time by default: provider calls are rate limited and the
	// batch is strictly sequential anyway.
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
