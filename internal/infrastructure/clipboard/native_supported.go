//go:build (linux || darwin || windows) && !arm && !386 && !ios && !android

package clipboard

import (
	"context"
	"errors"
	"sync"

	"github.com/aymanbagabas/go-nativeclipboard"

	"github.com/bnema/clipfetch/internal/logging"
	core "github.com/bnema/clipfetch/pkg/clipboard"
)

// noFormat is never a valid clipboard format. Reading it returns the
// library's init error when the display or pasteboard could not be opened,
// and ErrUnsupported otherwise, without touching the clipboard.
const noFormat nativeclipboard.Format = -1

var probeNative = sync.OnceValue(func() error {
	_, err := noFormat.Read()
	if err == nil || errors.Is(err, nativeclipboard.ErrUnsupported) {
		return nil
	}
	return err
})

func readNativeText(ctx context.Context) (string, error) {
	if err := nativeProbe(); err != nil {
		return "", core.NewPlatformError(BackendNative, "init", err)
	}
	data, err := nativeclipboard.Text.Read()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("native clipboard read failed")
		return "", mapNativeError(err)
	}
	if data == nil {
		return "", core.ErrNoText
	}
	return string(data), nil
}

// mapNativeError classifies a read error once init succeeded. The bare
// ErrUnavailable sentinel is what every platform returns when no text is
// offered: X11 with no selection owner, an empty pasteboard, or a missing
// CF_UNICODETEXT format. Wrapped ErrUnavailable is an X11 init failure.
func mapNativeError(err error) error {
	switch {
	case errors.Is(err, nativeclipboard.ErrUnsupported):
		return core.ErrNoText
	case errors.Is(err, nativeclipboard.ErrUnavailable) && errors.Unwrap(err) == nil:
		return core.ErrNoText
	default:
		return core.NewPlatformError(BackendNative, "read", err)
	}
}
