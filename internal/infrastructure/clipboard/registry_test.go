package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), Options{Kind: "clippy"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestOpen_WebOutsideBrowser(t *testing.T) {
	_, _, err := Open(context.Background(), Options{Kind: BackendWeb})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestOpen_WebEmuNeedsSyncSource(t *testing.T) {
	_, _, err := Open(context.Background(), Options{Kind: BackendWebEmu, WebEmuSource: BackendWeb})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestOpen_WorkerRequiresPost(t *testing.T) {
	if !AtottoAvailable() {
		t.Skip("atotto has no clipboard utility here")
	}
	_, _, err := Open(context.Background(), Options{Kind: BackendAtotto, Worker: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post")
}

func TestAvailable_ListsEveryBackend(t *testing.T) {
	infos := Available()

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
		assert.Contains(t, []string{"sync", "async"}, info.Mode)
	}
	assert.ElementsMatch(t, Names()[1:], names, "every name but auto is listed")

	for _, info := range infos {
		if info.Name == BackendWebEmu {
			assert.True(t, info.Available)
		}
	}
}

func stubNativeProbe(t *testing.T, err error) {
	t.Helper()
	orig := nativeProbe
	nativeProbe = func() error { return err }
	t.Cleanup(func() { nativeProbe = orig })
}

func stubTools(t *testing.T, env map[string]string, installed ...string) {
	t.Helper()
	orig := newToolsReader
	newToolsReader = func() *ToolsReader { return fakeTools(env, installed...) }
	t.Cleanup(func() { newToolsReader = orig })
}

func TestOpen_AutoSelection(t *testing.T) {
	wayland := map[string]string{"WAYLAND_DISPLAY": "wayland-0", "DISPLAY": ":0"}
	x11 := map[string]string{"DISPLAY": ":0"}

	tests := []struct {
		name      string
		probeErr  error
		env       map[string]string
		installed []string
		want      string
	}{
		{name: "wayland prefers wl-paste over native", env: wayland, installed: []string{"wl-paste"}, want: BackendTools},
		{name: "wayland without wl-paste uses native", env: wayland, installed: []string{"xclip"}, want: BackendNative},
		{name: "x11 prefers native", env: x11, installed: []string{"xclip"}, want: BackendNative},
		{name: "native init failed falls back to tools", probeErr: errors.New("no display"), env: x11, installed: []string{"xclip"}, want: BackendTools},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubNativeProbe(t, tt.probeErr)
			stubTools(t, tt.env, tt.installed...)

			backend, pumper, err := Open(context.Background(), Options{Kind: BackendAuto})
			require.NoError(t, err)
			assert.Nil(t, pumper)
			assert.Equal(t, tt.want, backend.Name())
		})
	}
}

func TestOpen_NativeUnavailableAtRuntime(t *testing.T) {
	stubNativeProbe(t, errors.New("no display"))

	_, _, err := Open(context.Background(), Options{Kind: BackendNative})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestAvailable_NativeReflectsProbe(t *testing.T) {
	stubTools(t, nil)

	for _, probeErr := range []error{nil, errors.New("no display")} {
		stubNativeProbe(t, probeErr)
		for _, info := range Available() {
			if info.Name == BackendNative {
				assert.Equal(t, probeErr == nil, info.Available)
			}
		}
	}
}
