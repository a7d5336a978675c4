// Package tui provides a Bubble Tea terminal user interface for the
// artwork batch applier.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/UnforeseenOcean/snippets-1/internal/artwork"
	"github.com/UnforeseenOcean/snippets-1/internal/audio"
	"github.com/UnforeseenOcean/snippets-1/internal/batch"
	"github.com/UnforeseenOcean/snippets-1/internal/config"
	"github.com/UnforeseenOcean/snippets-1/internal/model"
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

	artworkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateInitializing
	StateApplying
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   batch.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// Batch runner reference
	runner  *batch.Runner
	cleanup func()
	report  *model.RunReport

	// Run description
	artworkDesc string

	// Run progress
	doneJobs   int32
	failedJobs int32
	totalJobs  int32

	// Options
	sequential bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "/music/album (empty for current directory)"
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
		settings:  config.DefaultSettings(),
		logs:      make([]LogEntry, 0),
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
	// InitDoneMsg is sent when setup completes.
	InitDoneMsg struct {
		Runner   *batch.Runner
		Artwork  string
		JobCount int
		Cleanup  func()
		Err      error
	}

	// RunDoneMsg is sent when the whole batch finishes.
	RunDoneMsg struct {
		Report *model.RunReport
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
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
			m.runCleanup()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateApplying || m.state == StateInitializing {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput {
				m.state = StateInitializing
				return m, tea.Batch(m.initializeRun(), m.spinner.Tick)
			}

		case "ctrl+s":
			if m.state == StateInput {
				m.sequential = !m.sequential
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.runner = nil
				m.report = nil
				m.artworkDesc = ""
				m.doneJobs = 0
				m.failedJobs = 0
				m.totalJobs = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case InitDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.runner = msg.Runner
			m.cleanup = msg.Cleanup
			m.artworkDesc = msg.Artwork
			m.totalJobs = int32(msg.JobCount)
			m.state = StateApplying
			// Start the run and tick for progress updates
			cmds = append(cmds, m.startRun(), m.tickProgress())
		}

	case RunDoneMsg:
		m.runCleanup()
		m.report = msg.Report
		if msg.Report != nil {
			m.doneJobs = int32(msg.Report.Attempted)
			m.failedJobs = int32(msg.Report.Failed)
			for _, res := range msg.Report.Failures {
				m.logs = append(m.logs, LogEntry{
					Message: fmt.Sprintf("%s: %v", res.Job.Name(), res.Err),
					Level:   batch.LevelError,
				})
			}
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from the runner
		if m.runner != nil && m.state == StateApplying {
			done, failed, total := m.runner.GetProgress()
			m.doneJobs = done
			m.failedJobs = failed
			m.totalJobs = total

			// Calculate percentage and animate progress bar
			var percent float64
			if total > 0 {
				percent = float64(done) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
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

// runCleanup removes the prepared artwork temp file, once.
func (m *Model) runCleanup() {
	if m.cleanup != nil {
		m.cleanup()
		m.cleanup = nil
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎨 Album Art"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Embed cover artwork into MP3 files"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateInitializing:
		b.WriteString(m.viewInitializing())
	case StateApplying:
		b.WriteString(m.viewApplying())
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

	b.WriteString(subtitleStyle.Render("Enter target directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	sequentialCheck := "[ ]"
	if m.sequential {
		sequentialCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Sequential mode (ctrl+s)\n", sequentialCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Artwork probe: %s", strings.Join(m.settings.ArtworkFileNames, ", "))))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInitializing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Discovering artwork and audio files..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewApplying() string {
	var b strings.Builder

	if m.artworkDesc != "" {
		b.WriteString(successStyle.Render("Artwork:"))
		b.WriteString("\n")
		b.WriteString(artworkStyle.Render(fmt.Sprintf("  ♪ %s", m.artworkDesc)))
		b.WriteString("\n\n")
	}

	// Progress bar
	var percent float64
	if m.totalJobs > 0 {
		percent = float64(m.doneJobs) / float64(m.totalJobs)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Files: %d/%d | Failed: %d",
		m.doneJobs,
		m.totalJobs,
		m.failedJobs,
	)))
	b.WriteString("\n\n")

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	summary := ""
	if m.report != nil {
		summary = m.report.Summary()
	}
	box := boxStyle.Render(fmt.Sprintf("✨ Run Complete!\n\n%s", summary))
	b.WriteString(box)

	if len(m.logs) > 0 {
		b.WriteString("\n\n")
		b.WriteString(warningStyle.Render("Failed files:"))
		b.WriteString("\n")
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	if len(m.logs) > 0 {
		b.WriteString("\n\n")
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case batch.LevelError:
			style = errorStyle
			prefix = "✗"
		case batch.LevelWarning:
			style = warningStyle
			prefix = "!"
		case batch.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case batch.LevelInfo:
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
		return "enter: start • ctrl+s: sequential • esc: quit"
	case StateInitializing, StateApplying:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// initializeRun resolves the encoder, discovers artwork and enumerates
// the audio files.
func (m *Model) initializeRun() tea.Cmd {
	return func() tea.Msg {
		dir := strings.TrimSpace(m.textInput.Value())
		if dir == "" {
			dir = "."
		}

		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return InitDoneMsg{Err: fmt.Errorf("not a directory: %s", dir)}
		}

		settings := m.settings

		encoder, err := audio.ResolveEncoder(settings.EncoderPath)
		if err != nil {
			return InitDoneMsg{Err: err}
		}

		src, err := artwork.Discover(dir, settings.ArtworkFileNames)
		if err != nil {
			return InitDoneMsg{Err: err}
		}

		artPath, cleanup, err := artwork.Prepare(m.ctx, src, settings)
		if err != nil {
			return InitDoneMsg{Err: err}
		}

		workers := settings.Jobs
		if m.sequential {
			workers = 1
		}

		// Progress is polled via TickMsg rather than pushed per event
		runner := batch.NewRunner(audio.NewEmbedder(encoder), workers, nil)
		if err := runner.Initialize(dir, artPath); err != nil {
			cleanup()
			return InitDoneMsg{Err: err}
		}

		return InitDoneMsg{
			Runner:   runner,
			Artwork:  fmt.Sprintf("%s (%dx%d)", filepath.Base(src.Path), src.Width, src.Height),
			JobCount: len(runner.Jobs()),
			Cleanup:  cleanup,
		}
	}
}

// startRun runs the batch in the background.
func (m *Model) startRun() tea.Cmd {
	return func() tea.Msg {
		if m.runner == nil {
			return RunDoneMsg{Err: fmt.Errorf("no runner")}
		}

		report, err := m.runner.Run(m.ctx)
		return RunDoneMsg{Report: report, Err: err}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
