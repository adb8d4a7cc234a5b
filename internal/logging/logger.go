// Package logging builds the process logger and the console that command
// outcomes are reported to.
package logging

import (
	"io"
	"log/slog"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// SessionKey is the attribute carrying the session id on console records.
const SessionKey = "session"

// ParseLevel maps debug, info, warn and error to a slog level. Anything else
// is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// New creates a logger writing to w in the given format ("text" or "json").
// When transcript is not nil every console record is also kept there.
func New(level, format string, w io.Writer, transcript *Transcript) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var out slog.Handler
	if format == "json" {
		out = slog.NewJSONHandler(w, opts)
	} else {
		out = slog.NewTextHandler(w, opts)
	}
	if transcript == nil {
		return slog.New(out)
	}
	return slog.New(slogmulti.Fanout(out, transcript.Handler()))
}

// Console receives the outcome of every command.
type Console struct {
	logger *slog.Logger
}

func NewConsole(logger *slog.Logger) *Console {
	return &Console{logger: logger}
}

func (c *Console) Log(message string, isError bool) {
	if isError {
		c.logger.Error(message)
		return
	}
	c.logger.Info(message)
}
