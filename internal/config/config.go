package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bher20/ecoagua/internal/tariffs"
)

// Config is the runtime configuration of the service and CLI.
type Config struct {
	Port      string `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	DBDriver  string `yaml:"db_driver"`
	DBDSN     string `yaml:"db_dsn"`

	// Tariffs seeds the catalog at startup. Empty means tariffs.Defaults().
	Tariffs []tariffs.Descriptor `yaml:"tariffs"`
}

const configEnv = "ECOAGUA_CONFIG"

// Load builds a Config from defaults and environment variables, then
// overlays the YAML file named by ECOAGUA_CONFIG when set.
func Load() (Config, error) {
	cfg := FromEnv()
	if path := os.Getenv(configEnv); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if len(cfg.Tariffs) == 0 {
		cfg.Tariffs = tariffs.Defaults()
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables, with sane defaults.
func FromEnv() Config {
	port := os.Getenv("ECOAGUA_PORT")
	if port == "" {
		port = getenvDefault("PORT", "8000")
	}
	return Config{
		Port:      port,
		LogLevel:  getenvDefault("ECOAGUA_LOG_LEVEL", "info"),
		LogFormat: getenvDefault("ECOAGUA_LOG_FORMAT", "json"),
		DBDriver:  getenvDefault("ECOAGUA_DB_DRIVER", "memory"),
		DBDSN:     os.Getenv("ECOAGUA_DB_DSN"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
