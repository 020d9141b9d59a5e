// Package logger holds the process-wide structured logger used by the rowkit
// binaries. A terminal UI owns stdout, so log records go to a dated JSON file
// under ~/.rowkit/logs, or nowhere at all when logging is disabled.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards everything until Init enables a file.
var L = slog.New(slog.DiscardHandler)

const (
	logPrefix     = "rowkit-"
	logSuffix     = ".log"
	retentionDays = 14
)

var current io.Closer

// Options configures Init.
type Options struct {
	Enabled bool       // false discards all output
	Dir     string     // default ~/.rowkit/logs
	Level   slog.Level // minimum level
}

// Init configures L. It is called once from main before the program starts.
func Init(opts Options) error {
	Close()
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return nil
	}

	dir := opts.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		dir = filepath.Join(home, ".rowkit", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating log directory %s: %w", dir, err)
	}

	cleanOldLogs(dir, time.Now())

	name := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", name, err)
	}
	current = f

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// Close releases the log file, if any, and resets L to discard.
func Close() {
	if current != nil {
		current.Close()
		current = nil
	}
	L = slog.New(slog.DiscardHandler)
}

// ParseLevel maps debug, info, warn and error to a slog level.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// cleanOldLogs removes rowkit log files older than retentionDays.
func cleanOldLogs(dir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		// rowkit-2026-01-05.log
		day, err := time.Parse("2006-01-02", strings.TrimSuffix(strings.TrimPrefix(name, logPrefix), logSuffix))
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(filepath.Join(dir, name))
		}
	}
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
