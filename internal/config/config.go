// Package config loads the ambient settings of the anamnese CLI from the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogFile   = "ANAMNESE_LOG_FILE"
	EnvLogLevel  = "ANAMNESE_LOG_LEVEL"
	EnvFormat    = "ANAMNESE_FORMAT"
	EnvAltScreen = "ANAMNESE_ALT_SCREEN"
)

// Config holds the settings shared by every command. Flags override it.
type Config struct {
	LogFile   string
	LogLevel  slog.Level
	Format    string
	AltScreen bool
}

// DefaultConfig returns the settings used when nothing is configured.
// Logging is disabled by default.
func DefaultConfig() Config {
	return Config{
		LogLevel:  slog.LevelInfo,
		Format:    "text",
		AltScreen: true,
	}
}

// Load reads the given .env files (".env" when none is named), then the
// environment. Missing .env files are not an error; variables already
// set in the environment win over the file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := DefaultConfig()
	cfg.LogFile = getEnv(EnvLogFile, cfg.LogFile)
	cfg.Format = strings.ToLower(strings.TrimSpace(getEnv(EnvFormat, cfg.Format)))
	cfg.AltScreen = getEnvBool(EnvAltScreen, cfg.AltScreen)

	if v := getEnv(EnvLogLevel, ""); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("%s: invalid level %q (valid: debug, info, warn, error)", EnvLogLevel, v)
		}
	}
	return cfg, nil
}

// OpenLog opens the configured log file for appending. With no log file
// configured it returns a nil writer, which disables logging.
func (c Config) OpenLog() (io.WriteCloser, error) {
	if c.LogFile == "" {
		return nil, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on", "sim":
		return true
	case "0", "false", "no", "off", "nao", "não":
		return false
	default:
		return fallback
	}
}
