//go:build windows || (darwin && cgo)

package clipboard

import (
	"context"
	"sync"

	"golang.design/x/clipboard"

	"github.com/bnema/clipfetch/internal/logging"
	core "github.com/bnema/clipfetch/pkg/clipboard"
)

const designSupported = true

var (
	designInitOnce sync.Once
	designInitErr  error
)

func readDesignText(ctx context.Context) (string, error) {
	designInitOnce.Do(func() {
		designInitErr = clipboard.Init()
	})
	if designInitErr != nil {
		logging.FromContext(ctx).Debug().Err(designInitErr).Msg("design clipboard init failed")
		return "", core.NewPlatformError(BackendDesign, "init", designInitErr)
	}

	data := clipboard.Read(clipboard.FmtText)
	if data == nil {
		return "", core.ErrNoText
	}
	return string(data), nil
}
