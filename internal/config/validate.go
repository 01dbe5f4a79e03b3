package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBFile) == "" {
		return fmt.Errorf("config: db_file is required")
	}
	if c.MaxQueryLength <= 0 {
		return fmt.Errorf("config: max_query_length must be positive, got %d", c.MaxQueryLength)
	}
	switch c.Output {
	case OutputPlain, OutputTable:
	default:
		return fmt.Errorf("config: unknown output %q (want %s or %s)", c.Output, OutputPlain, OutputTable)
	}
	switch c.ErrorOutput {
	case ErrorOutputStderr, ErrorOutputStdout:
	default:
		return fmt.Errorf("config: unknown error_output %q (want %s or %s)", c.ErrorOutput, ErrorOutputStderr, ErrorOutputStdout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a log_level value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("config: unknown log_level %q", s)
	}
}
