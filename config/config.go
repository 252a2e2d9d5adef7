package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"jointbank/backend/database"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultEncryptionKey is only meant for local development
const DefaultEncryptionKey = "default-key-for-development-only"

// Config holds the server settings
type Config struct {
	Env                string          `yaml:"env"`
	Port               string          `yaml:"port"`
	Database           database.Config `yaml:"database"`
	CORSAllowedOrigins []string        `yaml:"cors_allowed_origins"`
	EncryptionKey      string          `yaml:"encryption_key"`
	LogLevel           string          `yaml:"log_level"`
	LogFormat          string          `yaml:"log_format"`
	SeedSampleData     bool            `yaml:"seed_sample_data"`
}

// Default returns the settings used when nothing else is configured
func Default() *Config {
	return &Config{
		Env:  "development",
		Port: "8080",
		Database: database.Config{
			Driver: database.DriverSQLite,
			Path:   database.MemoryPath,
		},
		CORSAllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:3000",
			"http://localhost:8080",
		},
		EncryptionKey:  DefaultEncryptionKey,
		LogLevel:       "info",
		SeedSampleData: true,
	}
}

// Load builds the config from the defaults, the optional YAML file at path,
// a .env file in the working directory and finally the environment
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// A missing .env is fine, variables may come from the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Env, "APP_ENV")
	setString(&c.Port, "PORT")
	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.Path, "DB_PATH")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.EncryptionKey, "ENCRYPTION_KEY")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogFormat, "LOG_FORMAT")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		c.CORSAllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.CORSAllowedOrigins = append(c.CORSAllowedOrigins, o)
			}
		}
	}

	if seed := os.Getenv("SEED_SAMPLE_DATA"); seed != "" {
		v, err := strconv.ParseBool(seed)
		if err != nil {
			return fmt.Errorf("invalid SEED_SAMPLE_DATA %q: %w", seed, err)
		}
		c.SeedSampleData = v
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// IsDevelopment reports whether the server runs outside production
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}
