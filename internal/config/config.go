package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// DefaultFile is the document used when nothing else is configured.
const DefaultFile = "structure.md"

// Config holds the runtime settings of the mdplanner binary.
type Config struct {
	// File is the Markdown document every command operates on.
	File string
	// LogCalls enables the use-case log on stderr.
	LogCalls bool
	LogLevel slog.Level
}

// DefaultConfig returns a Config with the use-case log disabled.
func DefaultConfig() Config {
	return Config{
		File:     DefaultFile,
		LogCalls: false,
		LogLevel: slog.LevelInfo,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or malformed values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(os.Getenv("MDPLANNER_FILE")); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("MDPLANNER_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MDPLANNER_LOG_LEVEL"); v != "" {
		if level, ok := parseLevel(v); ok {
			cfg.LogLevel = level
		}
	}
	return cfg
}

func parseLevel(v string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		return slog.LevelInfo, false
	}
	return level, true
}
