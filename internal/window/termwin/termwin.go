// Package termwin renders the splash in the terminal when no display is
// available, so a launch from an SSH or console session still shows progress.
package termwin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bloomsplash/internal/splashimage"
	"github.com/five82/bloomsplash/internal/state"
	"github.com/five82/bloomsplash/internal/window"
)

// refreshInterval is how often the view re-reads the launch status.
const refreshInterval = 250 * time.Millisecond

// Theme colors, Nightfox palette.
const (
	colorAccent = "#719cd6"
	colorText   = "#cdcecf"
	colorMuted  = "#738091"
	colorBorder = "#39506d"
)

type styles struct {
	Title  lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Frame  lipgloss.Style
	Spinny lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)).Bold(true),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
		Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(colorBorder)).Padding(0, 2),
		Spinny: lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)),
	}
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model behind the terminal splash.
type Model struct {
	store    *state.Store
	onClose  func()
	spinner  spinner.Model
	styles   styles
	snapshot state.Snapshot
	hidden   bool
}

// NewModel creates the terminal splash model. onClose may be nil.
func NewModel(store *state.Store, onClose func()) Model {
	st := defaultStyles()
	if onClose == nil {
		onClose = func() {}
	}
	if store == nil {
		store = &state.Store{}
	}
	return Model{
		store:    store,
		onClose:  onClose,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(st.Spinny)),
		styles:   st,
		snapshot: store.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd(refreshInterval))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.hidden = true
			m.onClose()
		}
		return m, nil

	case tickMsg:
		m.snapshot = m.store.Snapshot()
		return m, tickCmd(refreshInterval)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.hidden {
		return ""
	}
	snap := m.snapshot

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Bloom"))
	b.WriteString("\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(m.styles.Text.Render(statusLine(snap)))
	if snap.Phase == state.PhaseRunning && snap.MaxTicks > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("waited %ds, giving up in %ds", snap.Ticks, snap.Remaining())))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("q to hide"))

	return m.styles.Frame.Render(b.String()) + "\n"
}

func statusLine(snap state.Snapshot) string {
	switch snap.Phase {
	case state.PhaseRunning:
		if snap.ChildPID > 0 {
			return fmt.Sprintf("Starting Bloom (pid %d)...", snap.ChildPID)
		}
		return "Starting Bloom..."
	case state.PhaseTerminating:
		return "Done: " + snap.Reason
	default:
		return "Preparing..."
	}
}

// Surface runs Model on a terminal.
type Surface struct {
	store  *state.Store
	input  io.Reader
	output io.Writer
}

// Opener returns a window.Opener that renders store progress on stderr.
func Opener(store *state.Store) window.Opener {
	return func(splashimage.Image) (window.Surface, error) {
		return &Surface{store: store, input: os.Stdin, output: os.Stderr}, nil
	}
}

// Run drives the bubbletea program until ctx is done.
func (s *Surface) Run(ctx context.Context, onClose func()) error {
	p := tea.NewProgram(
		NewModel(s.store, onClose),
		tea.WithInput(s.input),
		tea.WithOutput(s.output),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal splash: %w", err)
	}
	return nil
}
