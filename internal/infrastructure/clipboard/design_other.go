//go:build !(windows || (darwin && cgo))

package clipboard

import (
	"context"

	core "github.com/bnema/clipfetch/pkg/clipboard"
)

// golang.design/x/clipboard needs cgo and X11 headers on linux, so it is only
// built where it links without system packages.
const designSupported = false

func readDesignText(context.Context) (string, error) {
	return "", &core.PlatformError{Backend: BackendDesign, Op: "read", Detail: "golang.design clipboard not built for this platform"}
}
