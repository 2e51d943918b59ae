package clipboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/clipfetch/pkg/clipboard"
	"github.com/bnema/clipfetch/pkg/clipboard/clipboardtest"
	"github.com/bnema/clipfetch/pkg/clipboard/mocks"
)

func TestService_FetchText_SyncResolvesImmediately(t *testing.T) {
	fake := clipboardtest.NewFake()
	fake.SetText("hello world")
	svc := clipboard.New(fake.Backend())

	read := svc.FetchText(context.Background())

	res, ok := read.Poll()
	require.True(t, ok, "sync backend must resolve before FetchText returns")
	text, err := res.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestService_FetchText_EmptyClipboardIsNoText(t *testing.T) {
	fake := clipboardtest.NewFake()
	svc := clipboard.New(fake.Backend())

	res, ok := svc.FetchText(context.Background()).Poll()

	require.True(t, ok)
	assert.ErrorIs(t, res.Err, clipboard.ErrNoText)
	assert.Empty(t, res.Text)
}

func TestService_FetchText_EmptyStringIsText(t *testing.T) {
	fake := clipboardtest.NewFake()
	fake.SetText("")
	svc := clipboard.New(fake.Backend())

	res, ok := svc.FetchText(context.Background()).Poll()

	require.True(t, ok)
	assert.NoError(t, res.Err)
	assert.Equal(t, "", res.Text)
}

func TestService_FetchText_AccessDenied(t *testing.T) {
	fake := clipboardtest.NewFake()
	fake.SetText("secret")
	fake.Deny()
	svc := clipboard.New(fake.Backend())

	res, ok := svc.FetchText(context.Background()).Poll()

	require.True(t, ok)
	assert.ErrorIs(t, res.Err, clipboard.ErrAccessDenied)
}

func TestService_FetchText_RoundTrip(t *testing.T) {
	fake := clipboardtest.NewFake()
	svc := clipboard.New(fake.Backend())

	for _, v := range []string{"a", "copied text", "multi\nline", "ünïcødé"} {
		fake.SetText(v)
		res, ok := svc.FetchText(context.Background()).Poll()
		require.True(t, ok)
		require.NoError(t, res.Err)
		assert.Equal(t, v, res.Text)
	}
	assert.Equal(t, 4, fake.Reads())
}

func TestService_FetchText_AsyncStaysPendingUntilCallback(t *testing.T) {
	platform := clipboardtest.NewFakeAsync()
	svc := clipboard.New(platform.Backend())

	read := svc.FetchText(context.Background())

	// tick 1..n: not ready
	for i := 0; i < 10; i++ {
		_, ok := read.Poll()
		require.False(t, ok, "poll %d returned early", i)
	}
	require.Equal(t, 1, platform.Pending())

	// callback fires between ticks
	require.True(t, platform.Fire(0, "copied text", nil))

	first, ok := read.Poll()
	require.True(t, ok)
	assert.Equal(t, clipboard.Result{Text: "copied text"}, first)

	second, ok := read.Poll()
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestService_FetchText_IndependentHandles(t *testing.T) {
	platform := clipboardtest.NewFakeAsync()
	svc := clipboard.New(platform.Backend())
	ctx := context.Background()

	a := svc.FetchText(ctx)
	b := svc.FetchText(ctx)
	require.NotEqual(t, a.ID(), b.ID())
	require.Equal(t, 2, platform.Pending())

	// complete out of order
	platform.Fire(1, "second", nil)
	_, aReady := a.Poll()
	assert.False(t, aReady)

	platform.Fire(0, "", clipboard.ErrNoText)

	resA, ok := a.Poll()
	require.True(t, ok)
	assert.ErrorIs(t, resA.Err, clipboard.ErrNoText)

	resB, ok := b.Poll()
	require.True(t, ok)
	assert.Equal(t, "second", resB.Text)
	assert.NoError(t, resB.Err)
}

func TestService_FetchText_SecondCompletionIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Name().Return("mock").AnyTimes()
	backend.EXPECT().Start(gomock.Any(), gomock.Any()).Do(func(_ context.Context, complete clipboard.Completion) {
		complete("first", nil)
		complete("second", nil)
	})

	res, ok := clipboard.New(backend).FetchText(context.Background()).Poll()

	require.True(t, ok)
	assert.Equal(t, "first", res.Text)
}

func TestService_FetchText_BackendErrorsAreNormalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	raw := errors.New("exit status 1: display unavailable")
	backend.EXPECT().Name().Return("mock").AnyTimes()
	backend.EXPECT().Start(gomock.Any(), gomock.Any()).Do(func(_ context.Context, complete clipboard.Completion) {
		complete("", raw)
	})

	res, ok := clipboard.New(backend).FetchText(context.Background()).Poll()
	require.True(t, ok)

	var pe *clipboard.PlatformError
	require.ErrorAs(t, res.Err, &pe)
	assert.Equal(t, "mock", pe.Backend)
	assert.Equal(t, raw.Error(), pe.Detail)
	assert.ErrorIs(t, res.Err, raw)
}

func TestService_FetchText_PanickingBackendResolvesWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Name().Return("mock").AnyTimes()
	backend.EXPECT().Start(gomock.Any(), gomock.Any()).Do(func(context.Context, clipboard.Completion) {
		panic("boom")
	})

	var read *clipboard.PendingRead
	require.NotPanics(t, func() {
		read = clipboard.New(backend).FetchText(context.Background())
	})

	res, ok := read.Poll()
	require.True(t, ok)
	var pe *clipboard.PlatformError
	require.ErrorAs(t, res.Err, &pe)
	assert.Contains(t, pe.Detail, "boom")
}

func TestService_FetchText_NoBackend(t *testing.T) {
	svc := clipboard.New(nil)
	assert.Equal(t, "none", svc.Backend())

	res, ok := svc.FetchText(context.Background()).Poll()
	require.True(t, ok)

	var pe *clipboard.PlatformError
	assert.ErrorAs(t, res.Err, &pe)
}

func TestService_FetchText_CallbackAfterHandleDropped(t *testing.T) {
	platform := clipboardtest.NewFakeAsync()
	svc := clipboard.New(platform.Backend())

	_ = svc.FetchText(context.Background())

	assert.NotPanics(t, func() {
		platform.FireAll("late", nil)
	})
}

func TestPendingRead_WaitHonorsContext(t *testing.T) {
	platform := clipboardtest.NewFakeAsync()
	read := clipboard.New(platform.Backend()).FetchText(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := read.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, read.Resolved())
}

func TestPendingRead_WaitReturnsOutcome(t *testing.T) {
	platform := clipboardtest.NewFakeAsync()
	read := clipboard.New(platform.Backend()).FetchText(context.Background())

	go platform.Fire(0, "later", nil)

	res, err := read.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "later", res.Text)

	select {
	case <-read.Done():
	default:
		t.Fatal("done channel should be closed after resolution")
	}
}

func TestPendingRead_IssuedAtIsFetchTime(t *testing.T) {
	fake := clipboardtest.NewFakeAsync()
	svc := clipboard.New(fake.Backend())

	before := time.Now()
	read := svc.FetchText(context.Background())
	after := time.Now()

	assert.False(t, read.IssuedAt().Before(before))
	assert.False(t, read.IssuedAt().After(after))
	assert.NotEmpty(t, read.ID())
}
