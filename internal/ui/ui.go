// Package ui implements a command-line user interface using [tea], showing the
// progress of a long-running ownership change together with its logs.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertwitch/fsmeta/internal/ownership"
)

type progressProvider interface {
	Progress() ownership.Progress
}

// Handler is the principal implementation of a user interface [Handler].
type Handler struct {
	progressHandler progressProvider
	program         *tea.Program

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewHandler returns a pointer to a new user interface [Handler]. The title
// is shown above the progress bar, the cancel function is called when the
// user requests the program to be terminated.
func NewHandler(ctx context.Context, cancel context.CancelFunc, title string, progressHandler progressProvider) *Handler {
	handler := &Handler{
		progressHandler: progressHandler,
	}

	model := NewTeaModel(handler, title, cancel)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the command-line user interface (the [tea.Program]). It
// blocks until the [tea.Program] has exited.
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}

// NewLogHandler returns a [LogHandler] wrapping inner, which sends failed
// entries of an ownership change to the user interface. The inner handler
// usually writes to [Handler.LogWriter].
func (uiHandler *Handler) NewLogHandler(inner slog.Handler) *LogHandler {
	return NewLogHandler(uiHandler.program, inner)
}

// Quit requests the command-line user interface to exit, which is usually
// done when the work it was showing has finished.
func (uiHandler *Handler) Quit() {
	uiHandler.program.Quit()
}
