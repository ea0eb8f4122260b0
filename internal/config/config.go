package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog" validate:"required"`
	Speech   SpeechConfig   `mapstructure:"speech"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// An empty URL selects the in-memory stores.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// CatalogConfig names the deck files to load at startup, keyed by deck ID.
type CatalogConfig struct {
	Decks map[string]DeckFiles `mapstructure:"decks" validate:"required,min=1,dive"`
}

// DeckFiles points at one deck's word and sentence resources. The sentence
// file is optional; inline examples still resolve without it.
type DeckFiles struct {
	Words     string `mapstructure:"words" validate:"required"`
	Sentences string `mapstructure:"sentences"`
}

// SpeechConfig contains pronunciation settings.
type SpeechConfig struct {
	Rate           float64 `mapstructure:"rate" validate:"gte=0,lte=1"`
	SourceLanguage string  `mapstructure:"source_language"`
	TargetLanguage string  `mapstructure:"target_language"`
}
