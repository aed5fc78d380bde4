package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr  string
	DataDir   string
	BoardRods int
	LogLevel  slog.Level
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		DataDir:  envOr("DATA_DIR", "./data"),
	}

	rods := envOr("BOARD_RODS", "9")
	n, err := strconv.Atoi(rods)
	if err != nil || n < 1 {
		return Config{}, fmt.Errorf("invalid BOARD_RODS %q", rods)
	}
	c.BoardRods = n

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
