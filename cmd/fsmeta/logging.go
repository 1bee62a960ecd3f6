package main

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

const (
	logToTerminal = "terminal"
	logToUI       = "ui"
)

// SlogManager is a [slog.Handler] fanning out records to a set of named
// handlers, which can be exchanged at runtime. This allows moving the logs
// into the user interface while it is running.
type SlogManager struct {
	sync.RWMutex
	handlers map[string]slog.Handler
	attrs    []slog.Attr
	groups   []string
}

// NewSlogManager returns a pointer to a new, empty [SlogManager].
func NewSlogManager() *SlogManager {
	return &SlogManager{
		handlers: make(map[string]slog.Handler),
	}
}

func (m *SlogManager) Enabled(ctx context.Context, level slog.Level) bool {
	m.RLock()
	defer m.RUnlock()

	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (m *SlogManager) Handle(ctx context.Context, r slog.Record) error {
	m.RLock()
	defer m.RUnlock()

	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}

	return nil
}

func (m *SlogManager) WithAttrs(attrs []slog.Attr) slog.Handler {
	m.RLock()
	defer m.RUnlock()

	derived := &SlogManager{
		handlers: make(map[string]slog.Handler, len(m.handlers)),
		attrs:    append(append([]slog.Attr{}, m.attrs...), attrs...),
		groups:   append([]string{}, m.groups...),
	}

	for name, h := range m.handlers {
		derived.handlers[name] = h.WithAttrs(attrs)
	}

	return derived
}

func (m *SlogManager) WithGroup(name string) slog.Handler {
	m.RLock()
	defer m.RUnlock()

	derived := &SlogManager{
		handlers: make(map[string]slog.Handler, len(m.handlers)),
		attrs:    append([]slog.Attr{}, m.attrs...),
		groups:   append(append([]string{}, m.groups...), name),
	}

	for handlerName, h := range m.handlers {
		derived.handlers[handlerName] = h.WithGroup(name)
	}

	return derived
}

// AddHandler adds (or replaces) a named handler, applying the attributes and
// groups the [SlogManager] was derived with.
func (m *SlogManager) AddHandler(name string, handler slog.Handler) {
	m.Lock()
	defer m.Unlock()

	h := handler
	if len(m.attrs) > 0 {
		h = h.WithAttrs(m.attrs)
	}

	for _, group := range m.groups {
		h = h.WithGroup(group)
	}

	m.handlers[name] = h
}

// RemoveHandler removes a named handler.
func (m *SlogManager) RemoveHandler(name string) {
	m.Lock()
	defer m.Unlock()

	delete(m.handlers, name)
}

func newTintHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
}
