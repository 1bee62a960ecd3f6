package ui

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/fsmeta/internal/ownership"
)

type teaProgramProvider interface {
	Send(msg tea.Msg)
}

// LogMsg is a single line of a formatted log record. It is typed for
// identification as [tea.Msg] within a [tea.Program].
type LogMsg string

// FailureMsg is a [tea.Msg] for an entry that an ownership change failed on,
// as taken from the warning logged for it by the [ownership] package.
type FailureMsg struct {
	Path string
	Err  string
}

// TeaLogWriter is an implementation of an [io.Writer], for use inside a
// [slog.Handler], that sends every written line to a [tea.Program] as
// [LogMsg].
type TeaLogWriter struct {
	program  teaProgramProvider
	doneChan chan struct{}
	logChan  chan LogMsg
}

// NewTeaLogWriter returns a pointer to a new [TeaLogWriter]. It also starts the
// internal log processing function, which should eventually be stopped e.g.
// with a deferred [TeaLogWriter.Stop] call.
func NewTeaLogWriter(program teaProgramProvider) *TeaLogWriter {
	wr := &TeaLogWriter{
		program:  program,
		doneChan: make(chan struct{}),
		logChan:  make(chan LogMsg, 1000), //nolint:mnd
	}

	go wr.processLogs()

	return wr
}

// Stop stops any log message processing. Any in-flight or late logs are
// discarded after calling this method.
func (wr *TeaLogWriter) Stop() {
	close(wr.doneChan)
}

func (wr *TeaLogWriter) processLogs() {
	for {
		select {
		case <-wr.doneChan:
			return
		case msg := <-wr.logChan:
			wr.program.Send(msg)
		}
	}
}

// Write queues every non-empty line of p for sending to the [tea.Program].
func (wr *TeaLogWriter) Write(p []byte) (int, error) {
	for line := range strings.SplitSeq(string(p), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		select {
		case <-wr.doneChan:
			return len(p), nil
		case wr.logChan <- LogMsg(line):
		}
	}

	return len(p), nil
}

// LogHandler is a [slog.Handler] passing all records to another handler,
// which usually writes to a [TeaLogWriter]. The warnings for entries failed
// during a recursive ownership change are also sent to the [tea.Program] as
// [FailureMsg], for the user interface to list them.
type LogHandler struct {
	program teaProgramProvider
	inner   slog.Handler
	attrs   []slog.Attr
	grouped bool
}

// NewLogHandler returns a pointer to a new [LogHandler] wrapping inner.
func NewLogHandler(program teaProgramProvider, inner slog.Handler) *LogHandler {
	return &LogHandler{
		program: program,
		inner:   inner,
	}
}

// Enabled reports whether the wrapped handler handles records at level.
func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle sends a [FailureMsg] for a failed entry, then passes the record on.
//
//nolint:gocritic
func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	if msg, ok := h.failure(r); ok {
		h.program.Send(msg)
	}

	return h.inner.Handle(ctx, r) //nolint:wrapcheck
}

func (h *LogHandler) failure(r slog.Record) (FailureMsg, bool) { //nolint:gocritic
	if r.Level < slog.LevelWarn || r.Message != ownership.FailureLogMessage || h.grouped {
		return FailureMsg{}, false
	}

	var msg FailureMsg

	collect := func(a slog.Attr) bool {
		switch a.Key {
		case "path":
			msg.Path = a.Value.String()
		case "err":
			msg.Err = a.Value.String()
		}

		return true
	}

	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(collect)

	return msg, msg.Path != ""
}

// WithAttrs returns a new [LogHandler] with the attributes added.
func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler { //nolint:ireturn
	handler := &LogHandler{
		program: h.program,
		inner:   h.inner.WithAttrs(attrs),
		attrs:   h.attrs,
		grouped: h.grouped,
	}

	if !h.grouped {
		handler.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	}

	return handler
}

// WithGroup returns a new [LogHandler] with the group added. Records of a
// grouped handler are never taken as failures.
func (h *LogHandler) WithGroup(name string) slog.Handler { //nolint:ireturn
	if name == "" {
		return h
	}

	return &LogHandler{
		program: h.program,
		inner:   h.inner.WithGroup(name),
		attrs:   h.attrs,
		grouped: true,
	}
}
