//go:build !(js && wasm)

package clipboard

import (
	"context"

	core "github.com/bnema/clipfetch/pkg/clipboard"
)

const webSupported = false

// RequestText fails immediately outside a browser build.
func (WebReader) RequestText(_ context.Context, complete core.Completion) {
	complete("", &core.PlatformError{Backend: BackendWeb, Op: "readText", Detail: "browser clipboard requires a js/wasm build"})
}
