package clipboard

import (
	"strings"

	core "github.com/bnema/clipfetch/pkg/clipboard"
)

// mapDOMError maps a rejected navigator.clipboard.readText promise onto the
// clipboard error taxonomy. name is the DOMException name.
func mapDOMError(backend, name, message string) error {
	switch name {
	case "NotAllowedError", "SecurityError":
		return core.ErrAccessDenied
	case "NotFoundError", "DataError":
		return core.ErrNoText
	}

	detail := strings.TrimSpace(name + ": " + message)
	detail = strings.TrimSuffix(detail, ":")
	if name == "" {
		detail = strings.TrimSpace(message)
	}
	if detail == "" {
		detail = "clipboard promise rejected"
	}
	return &core.PlatformError{Backend: backend, Op: "readText", Detail: detail}
}

// completeText finishes a browser read. Browsers resolve readText with "" when
// the clipboard has no text, so an empty result is reported as no text.
func completeText(complete core.Completion, text string) {
	if text == "" {
		complete("", core.ErrNoText)
		return
	}
	complete(text, nil)
}
