package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clipfetch/internal/application/port/mocks"
	"github.com/bnema/clipfetch/internal/application/usecase"
	"github.com/bnema/clipfetch/internal/cli/styles"
	"github.com/bnema/clipfetch/pkg/clipboard"
	"github.com/bnema/clipfetch/pkg/clipboard/clipboardtest"
)

func newTestModel(t *testing.T, backend clipboard.Backend, loop *mocks.MockHostLoop, settings *ViewSettings) ClipboardModel {
	t.Helper()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	display := usecase.NewDisplayClipboardUseCase(clipboard.New(backend), usecase.DisplayClipboardOptions{
		Placeholder: "(waiting)",
		Now:         clock,
	})
	cfg := ClipboardModelConfig{Display: display, Settings: settings, Now: clock}
	if loop != nil {
		cfg.Loop = loop
	}
	return NewClipboardModel(context.Background(), styles.NewTheme(), cfg)
}

func step(t *testing.T, m ClipboardModel, msg tea.Msg) (ClipboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	cm, ok := next.(ClipboardModel)
	require.True(t, ok)
	return cm, cmd
}

func TestClipboardModel_ShowsPlaceholderBeforeFirstFrame(t *testing.T) {
	m := newTestModel(t, clipboardtest.NewFake().Backend(), nil, nil)

	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "(waiting)")
}

func TestClipboardModel_FrameShowsSyncText(t *testing.T) {
	fake := clipboardtest.NewFake()
	fake.SetText("copied text")

	loop := mocks.NewMockHostLoop(t)
	loop.EXPECT().Turn(mock.Anything).Return().Once()

	m := newTestModel(t, fake.Backend(), loop, nil)
	m, cmd := step(t, m, frameMsg(time.Now()))

	assert.NotNil(t, cmd, "next frame is scheduled")
	assert.Equal(t, "copied text", m.State().Text)
	assert.False(t, m.State().Pending)
	assert.Equal(t, 1, fake.Reads())
	assert.Contains(t, m.View(), "copied text")
}

func TestClipboardModel_AsyncStaysPendingUntilFired(t *testing.T) {
	fake := clipboardtest.NewFakeAsync()
	m := newTestModel(t, fake.Backend(), nil, nil)

	m, _ = step(t, m, frameMsg(time.Now()))
	assert.True(t, m.State().Pending)
	assert.Equal(t, "(waiting)", m.State().Text)

	// A pending read is not reissued on the next frame.
	m, _ = step(t, m, frameMsg(time.Now()))
	assert.Equal(t, 1, fake.Requests())

	require.True(t, fake.Fire(0, "from the browser", nil))
	m, _ = step(t, m, frameMsg(time.Now()))
	assert.Equal(t, "from the browser", m.State().Text)
	assert.False(t, m.State().Pending)
}

func TestClipboardModel_ErrorIsRendered(t *testing.T) {
	fake := clipboardtest.NewFake()
	fake.Deny()

	m := newTestModel(t, fake.Backend(), nil, nil)
	m, _ = step(t, m, frameMsg(time.Now()))

	assert.True(t, m.State().IsError)
	assert.Equal(t, clipboard.Debug(clipboard.ErrAccessDenied), m.State().Text)
}

func TestClipboardModel_SettingsAreReadEachFrame(t *testing.T) {
	fake := clipboardtest.NewFake()
	fake.SetText("one\ntwo\nthree")

	settings := &ViewSettings{FPS: 30, ShowStatus: false}
	m := newTestModel(t, fake.Backend(), nil, settings)
	m, _ = step(t, m, frameMsg(time.Now()))

	assert.Contains(t, m.View(), "three")

	settings.MaxLines = 1
	assert.NotContains(t, m.View(), "three")
	assert.Contains(t, m.View(), "2 more lines")
}

func TestClipboardModel_WindowSizeAndQuit(t *testing.T) {
	m := newTestModel(t, clipboardtest.NewFake().Backend(), nil, nil)

	m, cmd := step(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 20, m.height)

	_, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
