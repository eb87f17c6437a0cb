package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBPath   string `env:"TABLETOP_DB_PATH"`
	LogLevel string `env:"TABLETOP_LOG_LEVEL" envDefault:"warn"`
	Seed     int64  `env:"TABLETOP_SEED" envDefault:"0"`
	NoUI     bool   `env:"TABLETOP_NO_UI" envDefault:"false"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment. A missing .env file is not an error.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path
func LoadFrom(dotenvPath string) (*Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" {
		path, err := defaultDatabasePath()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		cfg.DBPath = path
	}

	return cfg, nil
}

// defaultDatabasePath returns the path to the SQLite database file
func defaultDatabasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".tabletop", "boardgames.db"), nil
}
