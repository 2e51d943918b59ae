package model

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/clipfetch/internal/cli/styles"
)

// FetchFunc performs one blocking clipboard read.
type FetchFunc func(ctx context.Context) (string, error)

type fetchDoneMsg struct {
	text string
	err  error
}

// FetchModel shows a spinner while a one-shot read is outstanding and quits
// once it resolves.
type FetchModel struct {
	loading styles.LoadingModel
	fetch   FetchFunc
	ctx     context.Context
	cancel  context.CancelFunc

	done bool
	text string
	err  error
}

// NewFetchModel creates the model. Cancelling with ctrl+c cancels ctx.
func NewFetchModel(ctx context.Context, theme *styles.Theme, message string, fetch FetchFunc) FetchModel {
	ctx, cancel := context.WithCancel(ctx)
	return FetchModel{
		loading: styles.NewLoading(theme, message),
		fetch:   fetch,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Init implements tea.Model.
func (m FetchModel) Init() tea.Cmd {
	ctx, fetch := m.ctx, m.fetch
	return tea.Batch(m.loading.Spinner.Tick, func() tea.Msg {
		text, err := fetch(ctx)
		return fetchDoneMsg{text: text, err: err}
	})
}

// Update implements tea.Model.
func (m FetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.cancel()
		}
		return m, nil
	case fetchDoneMsg:
		m.cancel()
		m.done = true
		m.text = msg.text
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m FetchModel) View() string {
	if m.done {
		return ""
	}
	return m.loading.View() + "\n"
}

// Result returns the read outcome once the program has exited.
func (m FetchModel) Result() (string, error) {
	return m.text, m.err
}

// Done reports whether the read resolved.
func (m FetchModel) Done() bool {
	return m.done
}
