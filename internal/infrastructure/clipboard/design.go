package clipboard

import "context"

// BackendDesign is the name of the golang.design/x/clipboard backend.
const BackendDesign = "design"

// DesignReader reads through golang.design/x/clipboard. The library is
// initialised lazily on the first read.
type DesignReader struct{}

// NewDesignReader creates a golang.design reader.
func NewDesignReader() *DesignReader {
	return &DesignReader{}
}

// DesignAvailable reports whether the golang.design backend is compiled in.
func DesignAvailable() bool {
	return designSupported
}

// ReadText implements core.Reader.
func (DesignReader) ReadText(ctx context.Context) (string, error) {
	return readDesignText(ctx)
}
