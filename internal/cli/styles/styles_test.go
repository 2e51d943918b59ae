package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clipfetch/internal/cli/styles"
	"github.com/bnema/clipfetch/internal/domain/build"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "a\nb\nc", styles.Truncate("a\nb\nc", 0))
	assert.Equal(t, "a\nb\nc", styles.Truncate("a\nb\nc", 3))
	assert.Equal(t, "a\n… 2 more lines", styles.Truncate("a\nb\nc", 1))
}

func TestAge(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "never", styles.Age(time.Time{}, now))
	assert.Equal(t, "just now", styles.Age(now.Add(-200*time.Millisecond), now))
	assert.Equal(t, "3 seconds ago", styles.Age(now.Add(-3*time.Second), now))
	assert.Equal(t, "2 minutes ago", styles.Age(now.Add(-2*time.Minute), now))
}

func TestClipboardRenderer_Render(t *testing.T) {
	r := styles.NewClipboardRenderer(styles.NewTheme())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	out := r.Render(styles.ClipboardView{
		Text:       "hello clipboard",
		Backend:    "tools",
		UpdatedAt:  now.Add(-5 * time.Second),
		Now:        now,
		Fetches:    1200,
		Width:      80,
		Height:     12,
		ShowStatus: true,
	})

	assert.Contains(t, out, "hello clipboard")
	assert.Contains(t, out, "tools")
	assert.Contains(t, out, "5 seconds ago")
	assert.Contains(t, out, "15 B")
	assert.Contains(t, out, "1,200 reads")
}

func TestClipboardRenderer_ErrorHidesSize(t *testing.T) {
	r := styles.NewClipboardRenderer(styles.NewTheme())

	out := r.RenderStatus(styles.ClipboardView{Text: "NoText", IsError: true, Backend: "atotto", TimedOut: 2})

	assert.NotContains(t, out, " B")
	assert.Contains(t, out, "2 timed out")
	assert.Contains(t, out, "never")
}

func TestBackendsRenderer_Render(t *testing.T) {
	out := styles.NewBackendsRenderer(styles.NewTheme()).Render([]styles.BackendRow{
		{Name: "tools", Mode: "sync", Available: true, Selected: true, Note: "using wl-paste"},
		{Name: "web", Mode: "async", Available: false, Note: "js/wasm only"},
	})

	assert.Contains(t, out, "BACKEND")
	assert.Contains(t, out, "tools *")
	assert.Contains(t, out, "wl-paste")
	assert.Contains(t, out, "web")
}

func TestAboutRenderer_Render(t *testing.T) {
	out := styles.NewAboutRenderer(styles.NewTheme()).Render(build.Info{Version: "v1.2.3", Commit: "abcdef0"}, "native")

	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "native")
	assert.Contains(t, out, "unknown", "missing build date is shown as unknown")
	assert.Contains(t, out, build.RepoURL())
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	info := r.RenderConfigInfo("/tmp/clipfetch/config.toml")
	require.Contains(t, info, "config.toml")

	doc := r.RenderTOML("[display]\n  fps = 30\n")
	assert.Contains(t, doc, "[display]")
	assert.Contains(t, doc, "fps")
	assert.Contains(t, doc, "30")

	assert.Contains(t, r.RenderValidationError(errors.New("display.fps must be between 1 and 240")), "display.fps")
}

func TestNewLoading(t *testing.T) {
	m := styles.NewLoading(styles.NewTheme(), "reading clipboard")

	assert.Equal(t, spinner.MiniDot.Frames, m.Spinner.Spinner.Frames)
	assert.Contains(t, m.View(), "reading clipboard")
}
