// Package logger provides structured logging for the trace tool.
package logger

import (
	"io"
	"log/slog"
)

var Log = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init points the logger at w.
// - debug=true: logs all levels (DEBUG+)
// - debug=false: logs INFO and above
func Init(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	Log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Debug(msg string, args ...any) { Log.Debug(msg, args...) }
func Info(msg string, args ...any)  { Log.Info(msg, args...) }
func Warn(msg string, args ...any)  { Log.Warn(msg, args...) }
func Error(msg string, args ...any) { Log.Error(msg, args...) }
