package logger

import (
	"log/slog"
	"os"
)

var log = slog.Default()

// Init configures the global logger. Production gets JSON output at info
// level, everything else gets text output with debug enabled.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	log = slog.New(handler)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass either key/value pairs or a single bare
// error/value without tripping slog's pairing rules.
func normalize(args []any) []any {
	if len(args) != 1 {
		return args
	}
	if err, ok := args[0].(error); ok {
		return []any{"error", err}
	}
	if _, ok := args[0].(slog.Attr); ok {
		return args
	}
	return []any{"detail", args[0]}
}
