// Package tui provides a terminal snapshot viewer.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/netsnap/internal/model"
	"github.com/user/netsnap/internal/report"
)

// App is the snapshot viewer application.
type App struct {
	builder *report.Builder
	opts    report.Options
}

// NewApp creates a viewer over the given builder.
func NewApp(builder *report.Builder, opts report.Options) *App {
	return &App{
		builder: builder,
		opts:    opts,
	}
}

// Run starts the viewer.
func (a *App) Run() error {
	p := tea.NewProgram(newModel(a.builder, a.opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// uiModel is the main bubbletea model.
type uiModel struct {
	builder   *report.Builder
	opts      report.Options
	dashboard *Dashboard
	spinner   spinner.Model
	ready     bool
	width     int
	height    int
}

func newModel(builder *report.Builder, opts report.Options) uiModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return uiModel{
		builder: builder,
		opts:    opts,
		spinner: s,
	}
}

// Init initializes the model.
func (m uiModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		collectSnapshot(m.builder, m.opts),
	)
}

// Update handles messages.
func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.ready = false
			return m, tea.Batch(m.spinner.Tick, collectSnapshot(m.builder, m.opts))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.dashboard != nil {
			m.dashboard.SetSize(msg.Width, msg.Height)
		}

	case snapshotMsg:
		m.ready = true
		m.dashboard = NewDashboard(msg.Report, m.width, m.height)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI.
func (m uiModel) View() string {
	if !m.ready {
		return LoadingStyle.Render(m.spinner.View() + " Collecting snapshot...")
	}

	return m.dashboard.View()
}

// snapshotMsg delivers a freshly collected report.
type snapshotMsg struct {
	Report *model.Report
}

func collectSnapshot(builder *report.Builder, opts report.Options) tea.Cmd {
	return func() tea.Msg {
		// Build never fails; degraded sections carry their own flags.
		return snapshotMsg{Report: builder.Build(context.Background(), opts)}
	}
}
