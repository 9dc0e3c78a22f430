package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/smsguard/spam-classifier/pkg/dataset"
	"github.com/smsguard/spam-classifier/pkg/model"
	"github.com/smsguard/spam-classifier/pkg/textproc"
)

// Config represents the classifier configuration
type Config struct {
	// Tokenizer settings shared by training and classification
	Tokenizer textproc.NormalizerConfig `yaml:"tokenizer"`

	// Model training and storage settings
	Model ModelConfig `yaml:"model"`

	// Dataset reading and partitioning settings
	Dataset DatasetConfig `yaml:"dataset"`

	// Performance settings
	Performance PerformanceConfig `yaml:"performance"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// ModelConfig contains training parameters and model storage settings
type ModelConfig struct {
	// Laplace smoothing constant
	SmoothingFactor float64 `yaml:"smoothing_factor"`

	// Backend selection: "file" or "redis"
	Backend string `yaml:"backend"`

	// File backend model path
	ModelPath string `yaml:"model_path"`

	// Redis backend settings
	Redis model.RedisConfig `yaml:"redis"`
}

// DatasetConfig contains dataset loading and split settings
type DatasetConfig struct {
	// Message file path
	Path string `yaml:"path"`

	// CSV layout
	Columns dataset.Options `yaml:"columns"`

	// Stratified split
	TestFraction float64 `yaml:"test_fraction"`
	Seed         int64   `yaml:"seed"`
}

// PerformanceConfig contains performance tuning
type PerformanceConfig struct {
	// Worker count for vocabulary building and batch classification
	Workers int `yaml:"workers"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	File   string `yaml:"file"`   // log file path, empty = stdout
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Tokenizer: *textproc.DefaultNormalizerConfig(),
		Model: ModelConfig{
			SmoothingFactor: model.DefaultSmoothing,
			Backend:         "file",
			ModelPath:       "smsguard-model.json",
			Redis:           *model.DefaultRedisConfig(),
		},
		Dataset: DatasetConfig{
			Path:         "spam.csv",
			Columns:      dataset.DefaultOptions(),
			TestFraction: 0.2,
			Seed:         42,
		},
		Performance: PerformanceConfig{
			Workers: 8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from file, starting from defaults
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to file
func (c *Config) SaveConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Tokenizer.MinTokenLength < 1 {
		return fmt.Errorf("min_token_length must be >= 1")
	}

	if c.Tokenizer.LongNumberDigits < 1 {
		return fmt.Errorf("long_number_digits must be >= 1")
	}

	if c.Model.SmoothingFactor <= 0 {
		return fmt.Errorf("smoothing_factor must be > 0")
	}

	if c.Model.Backend != "file" && c.Model.Backend != "redis" {
		return fmt.Errorf("model backend must be 'file' or 'redis'")
	}

	if c.Model.Backend == "file" && c.Model.ModelPath == "" {
		return fmt.Errorf("model_path is required for the file backend")
	}

	if c.Model.Backend == "redis" && c.Model.Redis.RedisURL == "" {
		return fmt.Errorf("redis_url is required for the redis backend")
	}

	if c.Dataset.TestFraction < 0 || c.Dataset.TestFraction >= 1 {
		return fmt.Errorf("test_fraction must be in [0, 1)")
	}

	if c.Performance.Workers < 1 {
		return fmt.Errorf("workers must be >= 1")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	validLevel := false
	for _, level := range validLevels {
		if c.Logging.Level == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	return nil
}
