// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/thriftpath/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// messager is implemented by zerr.Error and reports the message without the cause chain.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	mu     sync.RWMutex
}

// New creates a new Logger writing human-readable records to stderr.
func New() *Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	return &Logger{
		logger: newSlog(os.Stderr, level),
		level:  level,
	}
}

func newSlog(w io.Writer, level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Build logs are diffed across runs; timestamps only add noise.
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = newSlog(w, l.level)
}

// SetVerbose enables or disables debug records.
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
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

// Error logs an error. The outermost message becomes the record message and
// the remaining chain is attached as the cause attribute.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	chain := Chain(err)
	var args []any
	if len(chain) > 1 {
		args = append(args, "cause", strings.Join(chain[1:], ": "))
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(chain[0], args...)
}

// Chain splits an error into its individual messages, outermost first.
// zerr errors contribute their own message; the first plain error ends the chain.
func Chain(err error) []string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		if msg := m.Message(); msg != "" {
			messages = append(messages, msg)
		}
		current = errors.Unwrap(current)
	}
	if len(messages) == 0 {
		return []string{err.Error()}
	}
	return messages
}
