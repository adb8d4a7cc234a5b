package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Entry is one console line.
type Entry struct {
	Time    time.Time
	Message string
	IsError bool
	Session string
}

// Transcript is an append-only record of console output. It captures every
// record at info level or above regardless of the output log level.
type Transcript struct {
	mu      sync.Mutex
	entries []Entry
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Entry(nil), t.entries...)
}

// Messages returns just the message text of every entry.
func (t *Transcript) Messages() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Message
	}
	return out
}

// Errors returns the messages of error entries.
func (t *Transcript) Errors() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []string
	for _, e := range t.entries {
		if e.IsError {
			out = append(out, e.Message)
		}
	}
	return out
}

func (t *Transcript) Reset() {
	t.mu.Lock()
	t.entries = nil
	t.mu.Unlock()
}

func (t *Transcript) append(e Entry) {
	t.mu.Lock()
	t.entries = append(t.entries, e)
	t.mu.Unlock()
}

func (t *Transcript) Handler() slog.Handler {
	return &transcriptHandler{transcript: t}
}

type transcriptHandler struct {
	transcript *Transcript
	session    string
}

func (h *transcriptHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *transcriptHandler) Handle(_ context.Context, record slog.Record) error {
	e := Entry{
		Time:    record.Time,
		Message: record.Message,
		IsError: record.Level >= slog.LevelError,
		Session: h.session,
	}
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == SessionKey {
			e.Session = a.Value.String()
			return false
		}
		return true
	})
	h.transcript.append(e)
	return nil
}

func (h *transcriptHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	for _, a := range attrs {
		if a.Key == SessionKey {
			next.session = a.Value.String()
		}
	}
	return &next
}

func (h *transcriptHandler) WithGroup(string) slog.Handler {
	return h
}
