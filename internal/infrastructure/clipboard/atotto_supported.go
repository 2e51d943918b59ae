//go:build !js

package clipboard

import "github.com/atotto/clipboard"

var atottoReadAll = clipboard.ReadAll

func atottoSupported() bool {
	return !clipboard.Unsupported
}
