package clipboard

// BackendWeb is the name of the browser clipboard backend.
const BackendWeb = "web"

// WebReader requests the clipboard text from the browser's asynchronous
// clipboard API. Results arrive on the browser's event loop.
type WebReader struct{}

// NewWebReader creates a browser clipboard reader.
func NewWebReader() *WebReader {
	return &WebReader{}
}

// WebAvailable reports whether the browser backend is compiled in.
func WebAvailable() bool {
	return webSupported
}
