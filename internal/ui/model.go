package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/fsmeta/internal/ownership"
	"github.com/dustin/go-humanize"
)

const (
	maxLogLines     = 100
	maxFailureLines = 5
)

//nolint:gochecknoglobals
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// ProgressMsg is a [tea.Msg] containing [ownership.Progress] information.
type ProgressMsg struct {
	t    time.Time
	data ownership.Progress
}

// TeaModel is the principal [tea.Model] for the command-line user interface.
type TeaModel struct {
	width  int
	height int

	title  string
	cancel context.CancelFunc

	uiHandler *Handler

	widthWithBorders int

	data         ownership.Progress
	progressBar  progress.Model
	logsViewport viewport.Model
	logs         []string
	failures     []FailureMsg

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler, title string, cancel context.CancelFunc) TeaModel {
	return TeaModel{
		uiHandler:    uiHandler,
		title:        title,
		progressBar:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(80)),
		logsViewport: viewport.New(80, 20),
		logs:         make([]string, 0, maxLogLines),
		failures:     make([]FailureMsg, 0, maxFailureLines),
		cancel:       cancel,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		updateProgress(m.uiHandler.progressHandler),
	)
}

// updateProgress produces a [tea.Cmd] that returns a [ProgressMsg] with the
// current progress after a short delay.
func updateProgress(p progressProvider) tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { //nolint:mnd
		return ProgressMsg{
			t:    t,
			data: p.Progress(),
		}
	})
}

// Update is the principal message handling method of the model.
//
//nolint:mnd,ireturn
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.widthWithBorders = m.width - 2

		m.progressBar.Width = m.widthWithBorders

		// Progress panel: borders, title, bar, details, failures and spacing.
		m.logsViewport.Width = m.widthWithBorders
		m.logsViewport.Height = max(m.height-14-maxFailureLines, 3)

		m.refreshLogs()

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case ProgressMsg:
		m.data = msg.data

		cmds = append(cmds,
			m.progressBar.SetPercent(m.data.ProgressPct/100),
			updateProgress(m.uiHandler.progressHandler),
		)

	case LogMsg:
		if len(m.logs) >= maxLogLines {
			m.logs = m.logs[1:]
		}
		m.logs = append(m.logs, string(msg))

		m.refreshLogs()

	case FailureMsg:
		if len(m.failures) >= maxFailureLines {
			m.failures = m.failures[1:]
		}
		m.failures = append(m.failures, msg)

	case progress.FrameMsg:
		updated, cmd := m.progressBar.Update(msg)
		if progressModel, ok := updated.(progress.Model); ok {
			m.progressBar = progressModel
		}
		cmds = append(cmds, cmd)
	}

	m.logsViewport, cmd = m.logsViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *TeaModel) refreshLogs() {
	if len(m.logs) == 0 {
		return
	}

	logs := lipgloss.NewStyle().
		Width(m.logsViewport.Width).
		Render(strings.Join(m.logs, "\n"))

	m.logsViewport.SetContent(logs)
	m.logsViewport.GotoBottom()
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	progressSection := borderStyle.
		Width(m.widthWithBorders).
		Render(m.formatProgressView())

	logsSection := borderStyle.
		Width(m.widthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.widthWithBorders).Render("Process Information"),
				lipgloss.NewStyle().Width(m.widthWithBorders).Render(m.logsViewport.View()),
			),
		)

	helpSection := helpStyle.
		Width(m.widthWithBorders).
		Render("q: quit gui - ctrl+c: quit program")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		progressSection,
		logsSection,
		helpSection,
	)
}

func (m TeaModel) formatProgressView() string {
	p := m.data

	var timing string
	switch {
	case p.HasFinished:
		timing = fmt.Sprintf("Time: Started=%s, Finished=%s (took %s)",
			p.StartTime.Format("15:04:05"),
			p.FinishTime.Format("15:04:05"),
			p.FinishTime.Sub(p.StartTime).Round(time.Millisecond),
		)
	case p.HasStarted:
		timing = fmt.Sprintf("Time: Started=%s (%s)",
			p.StartTime.Format("15:04:05"),
			humanize.Time(p.StartTime),
		)
	default:
		timing = "Time: Waiting to start"
	}

	details := fmt.Sprintf(
		"Progress: %.2f%%\n"+
			"Entries: Processed=%s, Pending=%s\n"+
			"%s\n",
		p.ProgressPct,
		humanize.Comma(int64(p.Processed)),
		humanize.Comma(int64(p.Pending)),
		timing,
	)

	failed := []string{infoStyle.Render("Failed=0")}
	if p.Failed > 0 {
		failed[0] = failStyle.Render("Failed=" + humanize.Comma(int64(p.Failed)))
	}

	// Most recent last, as in the logs.
	for _, f := range m.failures {
		failed = append(failed, failStyle.Width(m.widthWithBorders).Render("  "+f.Path+": "+f.Err))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.widthWithBorders).Render(m.title),
		"", // Empty line for spacing.
		m.progressBar.View(),
		"", // Empty line for spacing.
		infoStyle.Width(m.widthWithBorders).Render(details),
		lipgloss.JoinVertical(lipgloss.Left, failed...),
	)
}
