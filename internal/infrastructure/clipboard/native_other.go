//go:build !((linux || darwin || windows) && !arm && !386 && !ios && !android)

package clipboard

import (
	"context"
	"errors"

	core "github.com/bnema/clipfetch/pkg/clipboard"
)

var errNativeUnsupported = errors.New("native clipboard not supported on this platform")

func probeNative() error {
	return errNativeUnsupported
}

func readNativeText(context.Context) (string, error) {
	return "", &core.PlatformError{Backend: BackendNative, Op: "read", Detail: errNativeUnsupported.Error()}
}
