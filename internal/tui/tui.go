// Package tui provides a Bubble Tea terminal user interface for cratekeeper.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cratekeeper/internal/config"
	"cratekeeper/internal/download"
	"cratekeeper/internal/library"
	"cratekeeper/internal/process"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateSelect
	StateRunning
	StateComplete
	StateError
)

// stepOrder is the order steps run in, independent of toggle order.
var stepOrder = []config.Step{
	config.StepDownload,
	config.StepTag,
	config.StepDeposit,
	config.StepClean,
}

// stepKeys maps toggle keys to steps on the selection screen.
var stepKeys = map[string]config.Step{
	"d": config.StepDownload,
	"t": config.StepTag,
	"p": config.StepDeposit,
	"c": config.StepClean,
}

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   process.Level
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	logs      []LogEntry
	err       error

	// Open library
	lib     *library.Library
	queued  int
	steps   map[config.Step]bool
	verbose bool

	// Active run
	proc      *process.Processor
	events    chan process.Event
	order     []config.Step
	stepIndex int
	sum       process.Summary

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "~/music/techno or a registered alias"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		steps:     make(map[config.Step]bool),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// OpenDoneMsg is sent when the library has been opened and locked.
	OpenDoneMsg struct {
		Lib    *library.Library
		Queued int
		Err    error
	}

	// EventMsg carries one progress event from the running pipeline.
	EventMsg struct {
		Event process.Event
	}

	// StepDoneMsg is sent when one pipeline step finishes.
	StepDoneMsg struct {
		Index int
		Sum   process.Summary
		Err   error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			m.release()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateInput:
				return m, tea.Quit
			case StateSelect:
				m = m.reset()
			case StateRunning:
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				return m, tea.Batch(m.openLibrary(), m.spinner.Tick)
			}
			if m.state == StateSelect {
				return m.startRun()
			}

		case "v":
			if m.state == StateSelect {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				m.release()
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m = m.reset()
			}

		default:
			if m.state == StateSelect {
				if step, ok := stepKeys[msg.String()]; ok {
					m.steps[step] = !m.steps[step]
				}
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case OpenDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.lib = msg.Lib
			m.queued = msg.Queued
			m.steps = configuredSteps(msg.Lib.Settings)
			m.verbose = msg.Lib.Settings.Verbose
			m.state = StateSelect
		}

	case EventMsg:
		if m.events == nil {
			return m, nil
		}
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == process.LevelVerbose && !m.verbose {
			return m, m.waitForEvent()
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}
		cmds = append(cmds, m.waitForEvent())

	case StepDoneMsg:
		if m.events == nil {
			return m, nil
		}
		m.sum.Changed += msg.Sum.Changed
		m.sum.Skipped += msg.Sum.Skipped
		m.sum.Failed += msg.Sum.Failed

		switch {
		case msg.Err != nil && m.ctx.Err() != nil:
			close(m.events)
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			close(m.events)
			m.state = StateError
			m.err = msg.Err
		default:
			m.stepIndex++
			percent := float64(m.stepIndex) / float64(len(m.order))
			cmds = append(cmds, m.progress.SetPercent(percent))
			if m.stepIndex >= len(m.order) {
				close(m.events)
				m.state = StateComplete
			} else {
				cmds = append(cmds, m.runStep(m.stepIndex))
			}
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// configuredSteps turns the library's step list into the toggle map.
func configuredSteps(settings *config.Settings) map[config.Step]bool {
	steps := make(map[config.Step]bool)
	configured, err := settings.StepList()
	if err != nil {
		return steps
	}
	for _, step := range configured {
		steps[step] = true
	}
	return steps
}

// selectedSteps returns the toggled steps in pipeline order.
func (m Model) selectedSteps() []config.Step {
	var order []config.Step
	for _, step := range stepOrder {
		if m.steps[step] {
			order = append(order, step)
		}
	}
	return order
}

// openLibrary opens and locks the typed library.
func (m Model) openLibrary() tea.Cmd {
	arg := strings.TrimSpace(m.textInput.Value())
	return func() tea.Msg {
		lib, err := library.Open(arg)
		if err != nil {
			return OpenDoneMsg{Err: err}
		}
		if err := lib.Lock(); err != nil {
			return OpenDoneMsg{Err: err}
		}
		queue, err := lib.Queue()
		if err != nil {
			lib.Unlock()
			return OpenDoneMsg{Err: err}
		}
		return OpenDoneMsg{Lib: lib, Queued: len(queue)}
	}
}

// startRun builds the processor and starts the first selected step.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	order := m.selectedSteps()
	if len(order) == 0 {
		return m, nil
	}

	// Without prompts nothing could ever be confirmed, so proposals
	// apply automatically; occupied destinations are still skipped.
	m.lib.Settings.AutoTag = true

	events := make(chan process.Event, 64)
	conf, ok := m.lib.YtDlpConf()
	if !ok {
		conf = ""
	}
	dl := download.NewYtDlp(m.lib.Settings.YtDlpPath, conf)

	proc, err := process.New(m.lib, dl, nil, func(e process.Event) {
		events <- e
	})
	if err != nil {
		m.state = StateError
		m.err = err
		return m, nil
	}

	m.proc = proc
	m.events = events
	m.order = order
	m.stepIndex = 0
	m.sum = process.Summary{}
	m.logs = nil
	m.state = StateRunning

	return m, tea.Batch(m.runStep(0), m.waitForEvent(), m.spinner.Tick)
}

// runStep runs one pipeline step in the background.
func (m Model) runStep(i int) tea.Cmd {
	proc, ctx, step := m.proc, m.ctx, m.order[i]
	return func() tea.Msg {
		sum, err := proc.Run(ctx, []config.Step{step})
		return StepDoneMsg{Index: i, Sum: *sum, Err: err}
	}
}

// waitForEvent relays the next pipeline event into the program.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg{Event: e}
	}
}

// reset returns to the input screen, releasing the open library.
func (m Model) reset() Model {
	m.release()
	m.lib = nil
	m.queued = 0
	m.steps = make(map[config.Step]bool)
	m.verbose = false
	m.logs = nil
	m.err = nil
	m.proc = nil
	m.events = nil
	m.order = nil
	m.stepIndex = 0
	m.sum = process.Summary{}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.SetValue("")
	m.textInput.Focus()
	m.state = StateInput
	return m
}

// release drops the library lock if one is held.
func (m Model) release() {
	if m.lib != nil {
		m.lib.Unlock()
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎧 cratekeeper"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Download, tag and shelve your music"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateSelect:
		b.WriteString(m.viewSelect())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Open a library:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("A path to an initialized library, or a registered alias"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewSelect() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Library %s", m.lib.Root)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d queued download(s)", m.queued)))
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Steps:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Download the queue (d)\n", checkbox(m.steps[config.StepDownload])))
	b.WriteString(fmt.Sprintf("  %s Tag and rename (t)\n", checkbox(m.steps[config.StepTag])))
	b.WriteString(fmt.Sprintf("  %s Deposit into the collection (p)\n", checkbox(m.steps[config.StepDeposit])))
	b.WriteString(fmt.Sprintf("  %s Clean empty directories (c)\n", checkbox(m.steps[config.StepClean])))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Runs unattended: tag proposals apply, occupied destinations are skipped"))
	b.WriteString("\n")

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

func (m Model) viewRunning() string {
	var b strings.Builder

	// Step checklist
	for i, step := range m.order {
		switch {
		case i < m.stepIndex:
			b.WriteString(successStyle.Render(fmt.Sprintf("  ✓ %s", step)))
		case i == m.stepIndex:
			b.WriteString(stepStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), step)))
		default:
			b.WriteString(dimStyle.Render(fmt.Sprintf("    %s", step)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Progress bar
	b.WriteString(m.progress.View())
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Steps: %d/%d", m.stepIndex, len(m.order))))
	b.WriteString("\n\n")

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Run Complete!\n\n"+
			"Changed: %d\n"+
			"Skipped: %d\n"+
			"Failed:  %d",
		m.sum.Changed,
		m.sum.Skipped,
		m.sum.Failed,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case process.LevelError:
			style = errorStyle
			prefix = "✗"
		case process.LevelWarning:
			style = warningStyle
			prefix = "!"
		case process.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case process.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: open • esc: quit"
	case StateSelect:
		return "enter: run • d/t/p/c: toggle steps • v: verbose • esc: back"
	case StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: run again • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.release()
	}
	return err
}
