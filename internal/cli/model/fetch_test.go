package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clipfetch/internal/cli/styles"
	"github.com/bnema/clipfetch/pkg/clipboard"
)

func TestFetchModel_QuitsWithResult(t *testing.T) {
	m := NewFetchModel(context.Background(), styles.NewTheme(), "reading clipboard", func(context.Context) (string, error) {
		return "hello", nil
	})
	assert.Contains(t, m.View(), "reading clipboard")

	next, cmd := m.Update(fetchDoneMsg{text: "hello"})
	fm, ok := next.(FetchModel)
	require.True(t, ok)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.True(t, fm.Done())
	text, err := fm.Result()
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Empty(t, fm.View())
}

func TestFetchModel_KeepsError(t *testing.T) {
	m := NewFetchModel(context.Background(), styles.NewTheme(), "reading", nil)

	next, _ := m.Update(fetchDoneMsg{err: clipboard.ErrNoText})
	_, err := next.(FetchModel).Result()

	assert.ErrorIs(t, err, clipboard.ErrNoText)
}

func TestFetchModel_CtrlCCancelsFetch(t *testing.T) {
	m := NewFetchModel(context.Background(), styles.NewTheme(), "reading", nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	fm := next.(FetchModel)

	assert.ErrorIs(t, fm.ctx.Err(), context.Canceled)
	assert.False(t, fm.Done())
}
