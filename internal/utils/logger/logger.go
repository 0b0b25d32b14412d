package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"projectx/internal/app/config"
)

// New builds the process logger for env. Unknown environments get the
// prod setup. Logs go to stderr so command output stays clean.
func New(env string) *slog.Logger {
	return NewLevel(env, "")
}

// NewLevel is New with the environment's level replaced by level when it
// names one (debug, info, warn, error).
func NewLevel(env, level string) *slog.Logger {
	lvl := slog.LevelInfo
	if env == config.EnvLocal || env == config.EnvDev {
		lvl = slog.LevelDebug
	}
	if level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(strings.TrimSpace(level))); err == nil {
			lvl = parsed
		}
	}

	switch env {
	case config.EnvLocal:
		return setupPrettySlog(lvl)
	default:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	}
}

func setupPrettySlog(level slog.Leveler) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: level},
	}
	return slog.New(opts.NewPrettyHandler(os.Stderr))
}
