// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Pipeline struct {
		PreviewSize int `mapstructure:"preview_size" yaml:"preview_size"`
	} `mapstructure:"pipeline" yaml:"pipeline"`

	Output struct {
		Format    string `mapstructure:"format" yaml:"format"`
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"output" yaml:"output"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then config file, then TALLY_-prefixed environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.tally-pipeline")
	v.AddConfigPath(".tally-pipeline")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("TALLY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("pipeline.preview_size", 3)

	v.SetDefault("output.format", "json")
	v.SetDefault("output.delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Pipeline.PreviewSize < 1 {
		return fmt.Errorf("pipeline.preview_size must be at least 1, got: %d", config.Pipeline.PreviewSize)
	}

	if config.Output.Format != "json" && config.Output.Format != "csv" {
		return fmt.Errorf("invalid output format: %s (must be 'json' or 'csv')", config.Output.Format)
	}

	if len(config.Output.Delimiter) != 1 {
		return fmt.Errorf("output delimiter must be a single character, got: %s", config.Output.Delimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
