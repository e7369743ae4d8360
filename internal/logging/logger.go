package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvFormat selects the slog handler: json or text.
	EnvFormat = "LOG_FORMAT"
	// EnvLevel sets the minimum severity that is written.
	EnvLevel = "LOG_LEVEL"

	AppName = "open-aigov"

	defaultFormat = "json"
	defaultLevel  = "info"
)

type Config struct {
	Format string
	Level  slog.Level
}

type BootstrapOptions struct {
	Command string
	Writer  io.Writer
}

func DefaultConfig() Config {
	return Config{Format: defaultFormat, Level: slog.LevelInfo}
}

// LoadConfigFromEnv reads LOG_FORMAT and LOG_LEVEL, rejecting unknown values.
func LoadConfigFromEnv() (Config, error) {
	format, err := parseFormat(os.Getenv(EnvFormat))
	if err != nil {
		return Config{}, err
	}
	level, err := parseLevel(os.Getenv(EnvLevel))
	if err != nil {
		return Config{}, err
	}
	return Config{Format: format, Level: level}, nil
}

// NewLogger builds a logger that stamps every record with app and command.
func NewLogger(cfg Config, writer io.Writer, command string) *slog.Logger {
	if writer == nil {
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "text") {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	command = strings.TrimSpace(command)
	if command == "" {
		command = AppName
	}
	return slog.New(handler).With("app", AppName, "command", command)
}

func BootstrapFromEnv(opts BootstrapOptions) (*slog.Logger, error) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	logger := NewLogger(cfg, opts.Writer, opts.Command)
	slog.SetDefault(logger)
	return logger, nil
}

type ctxKey struct{}

// WithTenant returns a context whose logger carries the tenant slug.
func WithTenant(ctx context.Context, logger *slog.Logger, tenant string) context.Context {
	if logger == nil {
		logger = slog.Default()
	}
	return context.WithValue(ctx, ctxKey{}, logger.With("tenant", tenant))
}

// FromContext returns the logger stored by WithTenant, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

func parseFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	switch format {
	case "":
		return defaultFormat, nil
	case "json", "text":
		return format, nil
	}
	return "", fmt.Errorf("%s must be one of: json, text", EnvFormat)
}

func parseLevel(raw string) (slog.Level, error) {
	level := strings.ToLower(strings.TrimSpace(raw))
	if level == "" {
		level = defaultLevel
	}
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%s must be one of: debug, info, warn, error", EnvLevel)
}
