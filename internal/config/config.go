// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type EmailConfig struct {
	Enabled bool   `yaml:"enabled"`
	Region  string `yaml:"region"`
	Sender  string `yaml:"sender"`
	// Loaded from environment
	AccessKeyID     string `yaml:"-"`
	SecretAccessKey string `yaml:"-"`
}

type RemindersConfig struct {
	Enabled     bool  `yaml:"enabled"`
	HoursBefore int64 `yaml:"hours_before"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
	} `yaml:"app"`

	Database  DatabaseConfig  `yaml:"database"`
	Email     EmailConfig     `yaml:"email"`
	Reminders RemindersConfig `yaml:"reminders"`
}

// Load loads both .env and yaml configuration.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Load sensitive values from environment
	cfg.Email.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.Email.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Email.Enabled {
		if c.Email.Region == "" {
			return fmt.Errorf("email region is required when email is enabled")
		}
		if c.Email.Sender == "" {
			return fmt.Errorf("email sender is required when email is enabled")
		}
		if c.Email.AccessKeyID == "" || c.Email.SecretAccessKey == "" {
			return fmt.Errorf("email credentials are required when email is enabled")
		}
	}

	if c.Reminders.Enabled && c.Reminders.HoursBefore <= 0 {
		return fmt.Errorf("reminder hours_before must be positive")
	}

	return nil
}
