package model

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/clipfetch/internal/application/port"
	"github.com/bnema/clipfetch/internal/application/usecase"
	"github.com/bnema/clipfetch/internal/cli/styles"
)

// ViewSettings are the display options the watch view reads every frame.
// They may be replaced on the host loop while the program runs.
type ViewSettings struct {
	FPS        int
	MaxLines   int
	ShowStatus bool
}

// frameMsg drives one frame of the watch loop.
type frameMsg time.Time

// ClipboardModel is the watch view: each frame it turns the host loop, ticks
// the display use case and redraws the text node.
type ClipboardModel struct {
	display  *usecase.DisplayClipboardUseCase
	loop     port.HostLoop
	renderer *styles.ClipboardRenderer
	spinner  spinner.Model
	settings *ViewSettings
	now      func() time.Time

	state  usecase.DisplayState
	frames int
	width  int
	height int

	ctx context.Context
}

// ClipboardModelConfig contains the watch view dependencies.
type ClipboardModelConfig struct {
	Display  *usecase.DisplayClipboardUseCase
	Loop     port.HostLoop
	Settings *ViewSettings
	Now      func() time.Time
}

// NewClipboardModel creates the watch view model.
func NewClipboardModel(ctx context.Context, theme *styles.Theme, cfg ClipboardModelConfig) ClipboardModel {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	settings := cfg.Settings
	if settings == nil {
		settings = &ViewSettings{FPS: 30, ShowStatus: true}
	}
	return ClipboardModel{
		display:  cfg.Display,
		loop:     cfg.Loop,
		renderer: styles.NewClipboardRenderer(theme),
		spinner:  styles.NewPendingSpinner(theme),
		settings: settings,
		now:      now,
		state:    usecase.DisplayState{Text: cfg.Display.Text()},
		ctx:      ctx,
	}
}

// Init implements tea.Model.
func (m ClipboardModel) Init() tea.Cmd {
	return m.nextFrame()
}

func (m ClipboardModel) nextFrame() tea.Cmd {
	fps := m.settings.FPS
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (m ClipboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		m = m.frame(time.Time(msg))
		return m, m.nextFrame()
	}
	return m, nil
}

// frame runs one host loop turn and one display tick.
func (m ClipboardModel) frame(t time.Time) ClipboardModel {
	if m.loop != nil {
		m.loop.Turn(m.ctx)
	}
	m.state = m.display.Tick(m.ctx)
	m.frames++

	if m.state.Pending {
		m.spinner, _ = m.spinner.Update(spinner.TickMsg{Time: t, ID: m.spinner.ID()})
	}
	return m
}

// State returns the display state of the last frame.
func (m ClipboardModel) State() usecase.DisplayState {
	return m.state
}

// View implements tea.Model.
func (m ClipboardModel) View() string {
	return m.renderer.Render(styles.ClipboardView{
		Text:       m.state.Text,
		IsError:    m.state.IsError,
		Pending:    m.state.Pending,
		Spinner:    m.spinner.View(),
		Backend:    m.state.Backend,
		UpdatedAt:  m.state.UpdatedAt,
		Now:        m.now(),
		Fetches:    m.state.Fetches,
		TimedOut:   m.state.TimedOut,
		Width:      m.width,
		Height:     m.height,
		MaxLines:   m.settings.MaxLines,
		ShowStatus: m.settings.ShowStatus,
	})
}
