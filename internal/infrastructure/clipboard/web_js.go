//go:build js && wasm

package clipboard

import (
	"context"
	"syscall/js"

	"github.com/bnema/clipfetch/internal/logging"
	core "github.com/bnema/clipfetch/pkg/clipboard"
)

const webSupported = true

// RequestText implements core.AsyncReader with navigator.clipboard.readText.
func (WebReader) RequestText(ctx context.Context, complete core.Completion) {
	log := logging.FromContext(ctx)

	clip := js.Global().Get("navigator").Get("clipboard")
	if clip.IsUndefined() || clip.IsNull() || clip.Get("readText").IsUndefined() {
		complete("", &core.PlatformError{
			Backend: BackendWeb,
			Op:      "readText",
			Detail:  "navigator.clipboard.readText is unavailable (insecure context?)",
		})
		return
	}

	var onText, onError js.Func
	release := func() {
		onText.Release()
		onError.Release()
	}

	onText = js.FuncOf(func(_ js.Value, args []js.Value) any {
		defer release()
		text := ""
		if len(args) > 0 && args[0].Type() == js.TypeString {
			text = args[0].String()
		}
		completeText(complete, text)
		return nil
	})

	onError = js.FuncOf(func(_ js.Value, args []js.Value) any {
		defer release()
		name, message := "", ""
		if len(args) > 0 && args[0].Type() == js.TypeObject {
			name = args[0].Get("name").String()
			message = args[0].Get("message").String()
		} else if len(args) > 0 {
			message = args[0].String()
		}
		log.Debug().Str("dom_error", name).Str("message", message).Msg("browser clipboard read rejected")
		complete("", mapDOMError(BackendWeb, name, message))
		return nil
	})

	clip.Call("readText").Call("then", onText, onError)
}
