package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the simmer tool.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Index    IndexConfig    `yaml:"index"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AnalysisConfig controls how text is split into words before stemming.
type AnalysisConfig struct {
	Stopwords      bool `yaml:"stopwords"`
	MinLength      int  `yaml:"min_length"`
	FoldDiacritics bool `yaml:"fold_diacritics"`
}

// IndexConfig holds stem index configuration.
type IndexConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Stopwords:      true,
			MinLength:      2,
			FoldDiacritics: true,
		},
		Index: IndexConfig{
			Includes: []string{"**/*.txt", "**/*.md", "**/*.rst", "**/*.html"},
			Excludes: []string{"**/node_modules/**", "**/vendor/**", "**/.git/**", "**/.simmer/**"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for simmer.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "simmer.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".simmer", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IndexDBPath returns the path to the stem index database.
func IndexDBPath(dir string) string {
	return filepath.Join(dir, ".simmer", "index.db")
}

// EnsureDir ensures the .simmer directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".simmer"), 0755)
}
