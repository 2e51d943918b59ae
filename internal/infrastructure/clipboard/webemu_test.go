package clipboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/bnema/clipfetch/pkg/clipboard"
	"github.com/bnema/clipfetch/pkg/clipboard/clipboardtest"
)

func newEmulatedService(t *testing.T, source core.Reader, permission Permission, latency int) (*core.Service, *WebEmulator) {
	t.Helper()
	emu, err := NewWebEmulator(source, permission, latency)
	require.NoError(t, err)
	return core.New(core.NewAsyncBackend(BackendWebEmu, emu)), emu
}

func TestWebEmulator_PendingUntilLatencyElapses(t *testing.T) {
	ctx := context.Background()
	fake := clipboardtest.NewFake()
	fake.SetText("from js")
	svc, emu := newEmulatedService(t, fake, PermissionGranted, 3)

	read := svc.FetchText(ctx)
	_, ok := read.Poll()
	require.False(t, ok, "readText must not settle before the loop turns")
	assert.Equal(t, 1, emu.Pending())

	assert.Equal(t, 0, emu.Pump(ctx))
	assert.Equal(t, 0, emu.Pump(ctx))
	assert.False(t, read.Resolved())
	assert.Equal(t, 0, fake.Reads(), "the source is read when the promise settles")

	assert.Equal(t, 1, emu.Pump(ctx))
	res, ok := read.Poll()
	require.True(t, ok)
	text, err := res.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "from js", text)
	assert.Equal(t, 0, emu.Pending())
}

func TestWebEmulator_DeniedIsAccessDenied(t *testing.T) {
	ctx := context.Background()
	fake := clipboardtest.NewFake()
	fake.SetText("secret")
	svc, emu := newEmulatedService(t, fake, PermissionDenied, 1)

	read := svc.FetchText(ctx)
	emu.Pump(ctx)

	res, ok := read.Poll()
	require.True(t, ok)
	assert.ErrorIs(t, res.Err, core.ErrAccessDenied)
	assert.Equal(t, 0, fake.Reads())
}

func TestWebEmulator_PromptNeverSettles(t *testing.T) {
	ctx := context.Background()
	fake := clipboardtest.NewFake()
	fake.SetText("x")
	svc, emu := newEmulatedService(t, fake, PermissionPrompt, 1)

	read := svc.FetchText(ctx)
	for range 50 {
		emu.Pump(ctx)
	}

	assert.False(t, read.Resolved())
	assert.Equal(t, 1, emu.Pending())

	// Answering the prompt lets the queued promise settle.
	emu.SetPermission(PermissionGranted)
	emu.Pump(ctx)
	assert.True(t, read.Resolved())
}

func TestWebEmulator_AbandonedPromptReadsAreBounded(t *testing.T) {
	ctx := context.Background()
	fake := clipboardtest.NewFake()
	fake.SetText("x")
	svc, emu := newEmulatedService(t, fake, PermissionPrompt, 1)

	reads := make([]*core.PendingRead, 0, maxPendingPromises+4)
	for range maxPendingPromises + 4 {
		reads = append(reads, svc.FetchText(ctx))
	}

	assert.Equal(t, maxPendingPromises, emu.Pending())
	emu.mu.Lock()
	assert.Len(t, emu.callbacks, maxPendingPromises)
	emu.mu.Unlock()

	for _, read := range reads[:4] {
		res, ok := read.Poll()
		require.True(t, ok, "the oldest reads are rejected")
		var pe *core.PlatformError
		require.ErrorAs(t, res.Err, &pe)
		assert.Contains(t, pe.Detail, "AbortError")
	}
	for _, read := range reads[4:] {
		assert.False(t, read.Resolved())
	}
}

func TestWebEmulator_ReadsSettleIndependently(t *testing.T) {
	ctx := context.Background()
	fake := clipboardtest.NewFake()
	fake.SetText("first")
	svc, emu := newEmulatedService(t, fake, PermissionGranted, 2)

	a := svc.FetchText(ctx)
	emu.Pump(ctx)
	b := svc.FetchText(ctx)

	emu.Pump(ctx)
	require.True(t, a.Resolved())
	require.False(t, b.Resolved())

	fake.SetText("second")
	emu.Pump(ctx)

	ra, _ := a.Poll()
	rb, _ := b.Poll()
	assert.Equal(t, "first", ra.Text)
	assert.Equal(t, "second", rb.Text)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestWebEmulator_EmptyClipboardIsNoText(t *testing.T) {
	ctx := context.Background()
	svc, emu := newEmulatedService(t, clipboardtest.NewFake(), PermissionGranted, 1)

	read := svc.FetchText(ctx)
	emu.Pump(ctx)

	res, ok := read.Poll()
	require.True(t, ok)
	assert.ErrorIs(t, res.Err, core.ErrNoText)
}

func TestWebEmulator_SourceFailureIsPlatformError(t *testing.T) {
	ctx := context.Background()
	fake := clipboardtest.NewFake()
	fake.Fail(assert.AnError)
	svc, emu := newEmulatedService(t, fake, PermissionGranted, 1)

	read := svc.FetchText(ctx)
	emu.Pump(ctx)

	res, ok := read.Poll()
	require.True(t, ok)
	var pe *core.PlatformError
	require.ErrorAs(t, res.Err, &pe)
	assert.Equal(t, BackendWebEmu, pe.Backend)
	assert.Contains(t, pe.Detail, assert.AnError.Error())
}

func TestNewWebEmulator(t *testing.T) {
	_, err := NewWebEmulator(nil, PermissionGranted, 1)
	require.Error(t, err)

	emu, err := NewWebEmulator(clipboardtest.NewFake(), Permission("bogus"), 0)
	require.NoError(t, err)
	assert.Equal(t, PermissionGranted, emu.Permission())
	assert.Equal(t, 1, emu.latency)
}
