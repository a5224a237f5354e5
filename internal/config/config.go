// Package config loads environment configuration for the boxclip server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/frudas24/boxclip/internal/clipper"
)

const (
	defaultListenAddr   = "0.0.0.0:8790"
	defaultDataDir      = "./data"
	defaultPasswordMode = true
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr   string
	UIPassword   string
	PasswordMode bool
	DataDir      string
	ProfilesPath string
	// Engine is the base engine configuration every control connection starts from.
	Engine clipper.Config
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:   defaultListenAddr,
		DataDir:      defaultDataDir,
		PasswordMode: defaultPasswordMode,
		Engine:       clipper.DefaultConfig(),
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.ProfilesPath = envString("PROFILES_PATH", filepath.Join(cfg.DataDir, "profiles.yaml"))
	cfg.PasswordMode = envBool("PASSWORD_MODE", cfg.PasswordMode)
	cfg.UIPassword = strings.TrimSpace(os.Getenv("UI_PASSWORD"))

	minWidth, err := envFloat("MIN_WIDTH", cfg.Engine.MinWidth)
	if err != nil {
		return Config{}, err
	}
	cfg.Engine.MinWidth = minWidth

	minHeight, err := envFloat("MIN_HEIGHT", cfg.Engine.MinHeight)
	if err != nil {
		return Config{}, err
	}
	cfg.Engine.MinHeight = minHeight

	radius, err := envFloat("HANDLE_RADIUS", cfg.Engine.HandleRadius)
	if err != nil {
		return Config{}, err
	}
	cfg.Engine.HandleRadius = radius

	ratio, err := envFloat("ASPECT_RATIO", cfg.Engine.AspectRatio)
	if err != nil {
		return Config{}, err
	}
	cfg.Engine.AspectRatio = ratio

	if err := cfg.Engine.Validate(); err != nil {
		return Config{}, fmt.Errorf("engine config: %w", err)
	}

	if cfg.PasswordMode && cfg.UIPassword == "" {
		return Config{}, errors.New("UI_PASSWORD is required (or set PASSWORD_MODE=false)")
	}

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
