// config/config.go - Environment configuration and seed loading
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port     string
	DBPath   string
	SeedPath string
	Title    string
}

// Load reads configuration from the environment
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		DBPath:   getEnv("DB_PATH", "data/hourdash.db"),
		SeedPath: getEnv("TARGETS_SEED", ""),
		Title:    getEnv("TEMPLATE_TITLE", "HourDash"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadSeed reads a YAML (or JSON) targets config into an untyped value for
// targets.Normalize
func LoadSeed(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return raw, nil
}
