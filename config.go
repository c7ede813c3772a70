package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// AppConfig holds process-level knobs. Operator-facing settings live in the
// SQLite settings store, not here.
type AppConfig struct {
	Host          string
	Port          string
	DataDir       string
	UpdateFeedURL string
}

// LoadAppConfig reads the optional .env file and the KIOSK_* environment
// variables. The data directory is created when missing.
func LoadAppConfig() (*AppConfig, error) {
	// .env is a development convenience; absence is not an error
	_ = godotenv.Load()

	config := &AppConfig{
		Host:          envOr("KIOSK_HOST", DefaultWebHost),
		Port:          envOr("KIOSK_PORT", DefaultWebPort),
		DataDir:       os.Getenv("KIOSK_DATA_DIR"),
		UpdateFeedURL: os.Getenv("KIOSK_UPDATE_URL"),
	}

	if config.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		config.DataDir = filepath.Join(base, "labelkiosk")
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return config, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
