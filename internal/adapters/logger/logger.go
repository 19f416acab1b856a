// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/zerr"
)

// messager describes an error that reports its own message and metadata
// without the rest of the chain, as *zerr.Error does.
type messager interface {
	Message() string
	Metadata() map[string]any
}

var _ messager = (*zerr.Error)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    slog.LevelVar
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing pretty records at warn level and above to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.level.Set(slog.LevelWarn)
	l.logger = slog.New(l.newHandler())
	return l
}

func (l *Logger) newHandler() slog.Handler {
	opts := &slog.HandlerOptions{Level: &l.level}
	if l.jsonMode {
		return slog.NewJSONHandler(l.output, opts)
	}
	return NewPrettyHandler(l.output, opts)
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler())
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.newHandler())
}

// SetLevel sets the minimum level by name: debug, info, warn or error.
func (l *Logger) SetLevel(name string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zerr.With(zerr.Wrap(err, "unknown log level"), "level", name)
	}
	l.level.Set(level)
	return nil
}

// Debug logs a diagnostic message with key-value attributes.
func (l *Logger) Debug(msg string, attrs ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, attrs...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// ErrorEntry is one link of an error chain as it is reported.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the zerr part of the chain. Metadata of
// message-less links is folded into the next entry with a message.
// The first error outside zerr ends the walk with its full text.
func collectErrorEntries(err error) []ErrorEntry {
	var c errorCollector
	c.walk(err)

	if len(c.pending) > 0 && len(c.entries) > 0 {
		last := &c.entries[len(c.entries)-1]
		last.Metadata = mergeMetadata(last.Metadata, c.pending)
	}

	return c.entries
}

// errorCollector flattens an error tree into report entries. Metadata of
// message-less links is carried to the next entry.
type errorCollector struct {
	entries []ErrorEntry
	pending map[string]any
}

func (c *errorCollector) walk(err error) {
	for current := err; current != nil; current = errors.Unwrap(current) {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				c.walk(e)
			}
			return
		}

		m, ok := current.(messager)
		if !ok {
			c.entries = append(c.entries, ErrorEntry{Message: current.Error(), Metadata: c.pending})
			c.pending = nil
			return
		}

		if m.Message() == "" {
			c.pending = mergeMetadata(c.pending, m.Metadata())
			continue
		}

		c.entries = append(c.entries, ErrorEntry{
			Message:  m.Message(),
			Metadata: mergeMetadata(c.pending, m.Metadata()),
		})
		c.pending = nil
	}
}

func mergeMetadata(dst, src map[string]any) map[string]any {
	if len(dst) == 0 {
		return src
	}
	out := maps.Clone(dst)
	maps.Copy(out, src)
	return out
}

// formatErrorEntries renders the entries as:
//
//	Error: <first>
//	       key: value
//
//	  Caused by:
//	    → <second>
//	      key: value
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var head, indent string
		if i == 0 {
			head, indent = "Error: ", "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
