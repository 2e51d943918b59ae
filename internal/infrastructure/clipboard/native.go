package clipboard

import "context"

// BackendNative is the name of the github.com/aymanbagabas/go-nativeclipboard backend.
const BackendNative = "native"

// NativeReader reads the clipboard through the OS clipboard API directly,
// without helper processes.
type NativeReader struct{}

// NewNativeReader creates a native reader.
func NewNativeReader() *NativeReader {
	return &NativeReader{}
}

// nativeProbe reports why the native clipboard cannot be used here, or nil.
// Replaced in tests.
var nativeProbe = probeNative

// NativeAvailable reports whether the native backend is compiled in and the
// OS clipboard could be reached when the process started.
func NativeAvailable() bool {
	return nativeProbe() == nil
}

// ReadText implements core.Reader.
func (NativeReader) ReadText(ctx context.Context) (string, error) {
	return readNativeText(ctx)
}
