package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/fibtoolkit/internal/errors"
	"github.com/agbru/fibtoolkit/internal/metrics"
	"github.com/agbru/fibtoolkit/internal/orchestration"
)

// CommandResultMsg carries the outcome of one executed input line.
type CommandResultMsg struct {
	Line   string
	Result orchestration.Result
	Counts []metrics.CommandCount
}

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err error
}

// TickMsg refreshes the session clock and memory statistics.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory snapshot.
type MemStatsMsg metrics.MemorySnapshot

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the available height for the transcript and session
// panels.
func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-inputHeight-footerHeight, minBodyHeight)
}

// transcriptWidth returns the width allocated to the transcript panel.
func (l LayoutManager) transcriptWidth() int {
	return l.width * TranscriptPanelWidthPercent / 100
}

// sessionWidth returns the width allocated to the session panel.
func (l LayoutManager) sessionWidth() int {
	return l.width - l.transcriptWidth()
}

// Layout constants for the TUI explorer.
const (
	headerHeight                = 1
	inputHeight                 = 1
	footerHeight                = 1
	minBodyHeight               = 4
	TranscriptPanelWidthPercent = 70
)

// Model is the root bubbletea model for the TUI explorer.
type Model struct {
	header   HeaderModel
	session  SessionModel
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keymap   KeyMap

	LayoutManager

	ctx        context.Context
	dispatcher *orchestration.Dispatcher
	presenter  orchestration.ResultPresenter
	memory     *metrics.MemoryCollector

	transcript []string
	history    []string
	historyPos int
	exitCode   int
}

// NewModel creates a new TUI model executing lines through dispatcher.
func NewModel(ctx context.Context, dispatcher *orchestration.Dispatcher, version string) Model {
	in := textinput.New()
	in.Prompt = promptStyle.Render("fib> ")
	in.Placeholder = "seq 10, find 100, check 144, ratio 20, help"
	in.CharLimit = 256
	in.Focus()

	m := Model{
		header:     NewHeaderModel(version),
		session:    NewSessionModel(),
		input:      in,
		viewport:   viewport.New(0, 0),
		help:       help.New(),
		keymap:     DefaultKeyMap(),
		ctx:        ctx,
		dispatcher: dispatcher,
		presenter:  TUIResultPresenter{},
		memory:     metrics.NewMemoryCollector(),
		exitCode:   apperrors.ExitSuccess,
	}

	var b strings.Builder
	m.presenter.PresentHelp(orchestration.Commands, &b)
	m.appendTranscript(strings.TrimRight(b.String(), "\n"))
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tickCmd(),
		sampleMemStatsCmd(m.memory),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case CommandResultMsg:
		m.session.Record(msg.Result)
		if msg.Counts != nil {
			m.session.UpdateCounts(msg.Counts)
		}
		var b strings.Builder
		if msg.Result.Kind == orchestration.KindHelp && msg.Result.Err == nil {
			m.presenter.PresentHelp(orchestration.Commands, &b)
		} else {
			m.presenter.PresentResult(msg.Result, &b)
		}
		m.appendTranscript(echoStyle.Render("fib> "+msg.Line) + "\n" + strings.TrimRight(b.String(), "\n"))
		if msg.Result.Quit() {
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		m.header.Tick(time.Time(msg))
		return m, tea.Batch(sampleMemStatsCmd(m.memory), tickCmd())

	case MemStatsMsg:
		m.session.UpdateMemStats(metrics.MemorySnapshot(msg))
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitCodeFor(msg.Err)
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		line := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if line == "" {
			return m, nil
		}
		m.history = append(m.history, line)
		m.historyPos = len(m.history)
		return m, executeCmd(m.ctx, m.dispatcher, line)

	case key.Matches(msg, m.keymap.HistoryPrev):
		if m.historyPos > 0 {
			m.historyPos--
			m.input.SetValue(m.history[m.historyPos])
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keymap.HistoryNext):
		if m.historyPos < len(m.history)-1 {
			m.historyPos++
			m.input.SetValue(m.history[m.historyPos])
			m.input.CursorEnd()
		} else {
			m.historyPos = len(m.history)
			m.input.Reset()
		}
		return m, nil

	case key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keymap.Clear):
		m.transcript = nil
		m.viewport.SetContent("")
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layoutPanels()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// appendTranscript adds a block to the transcript and scrolls to it. Only
// the most recent transcriptLimit blocks are kept.
func (m *Model) appendTranscript(block string) {
	m.transcript = append(m.transcript, block)
	if n := len(m.transcript); n > transcriptLimit {
		m.transcript = m.transcript[n-transcriptLimit:]
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
	m.viewport.GotoBottom()
}

// Transcript returns the rendered transcript.
func (m Model) Transcript() string {
	return strings.Join(m.transcript, "\n\n")
}

// ExitCode returns the code the session ended with.
func (m Model) ExitCode() int {
	return m.exitCode
}

// View renders the explorer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	transcript := panelStyle.
		Width(max(m.transcriptWidth()-2, 0)).
		Height(max(m.bodyHeight()-2, 0)).
		Render(m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, transcript, m.session.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.input.View(),
		m.help.View(m.keymap),
	)
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.help.Width = m.width
	m.input.Width = max(m.width-lipgloss.Width(m.input.Prompt)-1, 1)

	body := m.bodyHeight()
	if m.help.ShowAll {
		body = max(body-2, minBodyHeight)
	}
	m.viewport.Width = max(m.transcriptWidth()-2, 1)
	m.viewport.Height = max(body-2, 1)
	m.viewport.GotoBottom()
	m.session.SetSize(m.sessionWidth(), body)
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, dispatcher *orchestration.Dispatcher, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	p := tea.NewProgram(NewModel(ctx, dispatcher, version), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// executeCmd runs one line through the dispatcher.
func executeCmd(ctx context.Context, dispatcher *orchestration.Dispatcher, line string) tea.Cmd {
	return func() tea.Msg {
		res := dispatcher.ExecuteLine(ctx, line)
		counts, err := dispatcher.Recorder().Counts()
		if err != nil {
			counts = nil
		}
		return CommandResultMsg{Line: line, Result: res, Counts: counts}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd(mc *metrics.MemoryCollector) tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg(mc.Snapshot())
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
