package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/bnema/clipfetch/pkg/clipboard"
)

func TestMapDOMError(t *testing.T) {
	assert.ErrorIs(t, mapDOMError(BackendWeb, "NotAllowedError", "Read permission denied."), core.ErrAccessDenied)
	assert.ErrorIs(t, mapDOMError(BackendWeb, "SecurityError", ""), core.ErrAccessDenied)
	assert.ErrorIs(t, mapDOMError(BackendWeb, "NotFoundError", ""), core.ErrNoText)
	assert.ErrorIs(t, mapDOMError(BackendWeb, "DataError", ""), core.ErrNoText)

	var pe *core.PlatformError
	require.ErrorAs(t, mapDOMError(BackendWeb, "AbortError", "document is not focused"), &pe)
	assert.Equal(t, "AbortError: document is not focused", pe.Detail)
	assert.Equal(t, "readText", pe.Op)

	require.ErrorAs(t, mapDOMError(BackendWeb, "", "boom"), &pe)
	assert.Equal(t, "boom", pe.Detail)

	require.ErrorAs(t, mapDOMError(BackendWeb, "", ""), &pe)
	assert.Equal(t, "clipboard promise rejected", pe.Detail)
}

func TestCompleteText(t *testing.T) {
	var gotText string
	var gotErr error
	complete := func(text string, err error) { gotText, gotErr = text, err }

	completeText(complete, "")
	assert.ErrorIs(t, gotErr, core.ErrNoText)

	completeText(complete, "hi")
	require.NoError(t, gotErr)
	assert.Equal(t, "hi", gotText)
}
