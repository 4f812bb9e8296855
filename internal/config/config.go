package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/misterclayt0n/treino/internal/planner"
)

const devConnectionString = "file:./local.db"

type Config struct {
	DB      DBConfig      `toml:"database"`
	Server  ServerConfig  `toml:"server"`
	Planner PlannerConfig `toml:"planner"`
	Log     LogConfig     `toml:"log"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type PlannerConfig struct {
	CatalogPath string `toml:"catalog_path"` // Read the catalog from this file instead of the database.
	Weeks       int    `toml:"weeks"`
	DaysPerWeek int    `toml:"days_per_week"`
}

type LogConfig struct {
	Mode string `toml:"mode"` // "dev" or "prod".
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func Default() *Config {
	return &Config{
		DB:      DBConfig{ConnectionString: devConnectionString},
		Server:  ServerConfig{Host: "127.0.0.1", Port: 8080},
		Planner: PlannerConfig{Weeks: planner.DefaultWeeks, DaysPerWeek: planner.DefaultDaysPerWeek},
		Log:     LogConfig{Mode: "dev"},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "treino")
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error. Variables from a .env file
// in the working directory are loaded first, then environment overrides
// are applied.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// .env is optional.
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TURSO_DATABASE_URL"); v != "" {
		cfg.DB.ConnectionString = v
	}
	if v := os.Getenv("TREINO_CATALOG"); v != "" {
		cfg.Planner.CatalogPath = v
	}
	if v := os.Getenv("TREINO_LOG_MODE"); v != "" {
		cfg.Log.Mode = v
	}
	if v := os.Getenv("TREINO_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}
}

func (c *Config) validate() error {
	if c.DB.ConnectionString == "" && c.Planner.CatalogPath == "" {
		return fmt.Errorf("either database.connection_string or planner.catalog_path is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	if err := planner.ValidateSchedule(c.Planner.Weeks, c.Planner.DaysPerWeek); err != nil {
		return fmt.Errorf("planner.weeks and planner.days_per_week: %w", err)
	}
	return nil
}
