package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return loadWithFile("")
}

// LoadFromFile is Load with an explicit config file path, used by tests.
func LoadFromFile(configPath string) (*Config, error) {
	return loadWithFile(configPath)
}

func loadWithFile(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("speech.rate", 0.45)
	v.SetDefault("speech.source_language", "de-DE")
	v.SetDefault("speech.target_language", "vi-VN")

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, the environment can carry
		// everything. Anything else, including a file that exists but does
		// not parse, is a real error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Configure environment variables
	v.SetEnvPrefix("VIETGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind critical environment variables
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"database.url", "VIETGER_DATABASE_URL"},
		{"server.port", "VIETGER_SERVER_PORT"},
		{"server.log_level", "VIETGER_SERVER_LOG_LEVEL"},
		{"speech.rate", "VIETGER_SPEECH_RATE"},
	}
	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
