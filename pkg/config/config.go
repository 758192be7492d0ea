package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Gemini     GeminiConfig
	Extraction ExtractionConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"taskledger"`
	Password    string `envconfig:"DB_PASSWORD" default:"taskledger"`
	Name        string `envconfig:"DB_NAME" default:"taskledger"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// GeminiConfig holds Google Gemini API configuration
type GeminiConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"60s"`
}

// ExtractionConfig holds retry policy settings for the extraction pipeline
type ExtractionConfig struct {
	MaxAttempts     int           `envconfig:"EXTRACTION_MAX_ATTEMPTS" default:"3"`
	InitialInterval time.Duration `envconfig:"EXTRACTION_INITIAL_INTERVAL" default:"1s"`
	MaxInterval     time.Duration `envconfig:"EXTRACTION_MAX_INTERVAL" default:"10s"`
	MaxTranscript   int           `envconfig:"EXTRACTION_MAX_TRANSCRIPT_CHARS" default:"10000"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Extraction.MaxAttempts < 1 {
		return fmt.Errorf("EXTRACTION_MAX_ATTEMPTS must be at least 1")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}
