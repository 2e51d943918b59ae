//go:build js

package clipboard

import "errors"

func atottoReadAll() (string, error) {
	return "", errors.New("atotto clipboard is not available in the browser")
}

func atottoSupported() bool {
	return false
}
