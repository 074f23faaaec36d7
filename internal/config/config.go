package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Environment string `yaml:"environment"`
	} `yaml:"app"`

	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	Session struct {
		UserID int    `yaml:"user_id"`
		Token  string `yaml:"-"` // loaded from environment
	} `yaml:"session"`

	Prefs struct {
		Path string `yaml:"path"`
	} `yaml:"prefs"`

	Jobs struct {
		// Cron expression for the periodic vehicle-list refresh.
		VehicleRefresh string `yaml:"vehicle_refresh"`
	} `yaml:"jobs"`
}

// Load reads the yaml config plus an optional .env next to it. The bearer
// token only ever comes from the environment, never from the file.
func Load(configPath string) (*Config, error) {
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

	cfg.Session.Token = os.Getenv("PARQUEA_TOKEN")

	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 15
	}
	if cfg.Jobs.VehicleRefresh == "" {
		cfg.Jobs.VehicleRefresh = "@every 15m"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api base_url is required")
	}
	if c.Session.UserID == 0 {
		return fmt.Errorf("session user_id is required")
	}
	if c.Prefs.Path == "" {
		return fmt.Errorf("prefs path is required")
	}
	return nil
}
