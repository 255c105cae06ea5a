package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"
)

// Zone is the time zone log timestamps are rendered in.
const Zone = "America/Guayaquil"

// New returns a JSON slog logger writing to stdout and, when path is set, also
// appending to that file. The returned closer releases the file.
func New(level, path string) (*slog.Logger, io.Closer, error) {
	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, f)
		closer = f
	}

	loc, err := time.LoadLocation(Zone)
	if err != nil {
		return nil, nil, fmt.Errorf("load log time zone: %w", err)
	}
	return NewWithWriter(out, ParseLevel(level), loc), closer, nil
}

// NewWithWriter builds the JSON logger on an arbitrary writer.
func NewWithWriter(w io.Writer, level slog.Level, loc *time.Location) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				return slog.String(slog.TimeKey, a.Value.Time().In(loc).Format(time.RFC3339))
			}
			return a
		},
	})
	return slog.New(handler)
}

// ParseLevel maps debug|info|warn|error to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
