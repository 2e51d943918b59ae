package clipboard

import (
	"context"
	"errors"
	"os/exec"

	"github.com/bnema/clipfetch/internal/logging"
	core "github.com/bnema/clipfetch/pkg/clipboard"
)

// BackendAtotto is the name of the github.com/atotto/clipboard backend.
const BackendAtotto = "atotto"

// AtottoReader reads through github.com/atotto/clipboard.
//
// The library shells out on unix and cannot tell an empty clipboard from
// empty text, so empty output is reported as core.ErrNoText.
type AtottoReader struct {
	readAll func() (string, error)
}

// NewAtottoReader creates a reader backed by clipboard.ReadAll.
func NewAtottoReader() *AtottoReader {
	return &AtottoReader{readAll: atottoReadAll}
}

// AtottoAvailable reports whether atotto found a clipboard utility.
func AtottoAvailable() bool {
	return atottoSupported()
}

// ReadText implements core.Reader.
func (r *AtottoReader) ReadText(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	text, err := r.readAll()
	if err != nil {
		log.Debug().Err(err).Msg("atotto clipboard read failed")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", classifyToolError(BackendAtotto, "paste", string(exitErr.Stderr), err)
		}
		return "", core.NewPlatformError(BackendAtotto, "read", err)
	}
	if text == "" {
		return "", core.ErrNoText
	}
	return text, nil
}
