// Package testutil holds logging helpers shared by the package tests.
package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// NewTestLogger routes debug-level records to t.Log, so they show up
// with -v or when the test fails.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(tbWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type tbWriter struct{ t testing.TB }

func (w tbWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Recorder keeps every formatted log line for later assertions.
type Recorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewRecorder returns a debug-level logger and the recorder behind it.
func NewRecorder() (*slog.Logger, *Recorder) {
	r := &Recorder{}
	return slog.New(slog.NewTextHandler(r, &slog.HandlerOptions{Level: slog.LevelDebug})), r
}

func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

// Lines returns the recorded lines whose msg equals msg, or all lines
// when msg is empty.
func (r *Recorder) Lines(msg string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(r.buf.String()), "\n") {
		if line == "" {
			continue
		}
		if msg == "" || strings.Contains(line, "msg="+quoteMsg(msg)) {
			out = append(out, line)
		}
	}
	return out
}

func quoteMsg(msg string) string {
	if strings.ContainsAny(msg, " =\"") {
		return `"` + strings.ReplaceAll(msg, `"`, `\"`) + `"`
	}
	return msg
}
