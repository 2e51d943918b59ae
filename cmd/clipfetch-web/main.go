//go:build js && wasm

// Command clipfetch-web shows the clipboard text in a page, polling the
// browser clipboard once per animation frame.
package main

import (
	"context"
	"syscall/js"

	"github.com/bnema/clipfetch/internal/application/usecase"
	infraclip "github.com/bnema/clipfetch/internal/infrastructure/clipboard"
	"github.com/bnema/clipfetch/internal/logging"
	"github.com/bnema/clipfetch/pkg/clipboard"
)

const (
	nodeID   = "clipfetch"
	nodeCSS  = "position:fixed;top:50%;left:50%;transform:translate(-50%,-50%);max-width:90vw;max-height:90vh;overflow:auto;padding:1em 2em;background:#000080;color:#fff;font:16px monospace;white-space:pre-wrap;border-radius:6px"
	errorCSS = "color:#ffb3b3"
)

func main() {
	logger := logging.NewFromEnv()
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "web")

	backend, _, err := infraclip.Open(ctx, infraclip.Options{Kind: infraclip.BackendWeb})
	if err != nil {
		logger.Fatal().Err(err).Msg("open browser clipboard")
	}

	display := usecase.NewDisplayClipboardUseCase(clipboard.New(backend), usecase.DisplayClipboardOptions{
		Placeholder: "(waiting for clipboard)",
	})

	node := textNode()
	node.Set("textContent", display.Text())

	var frame js.Func
	frame = js.FuncOf(func(js.Value, []js.Value) any {
		st := display.Tick(ctx)
		if st.Changed {
			node.Set("textContent", st.Text)
			css := nodeCSS
			if st.IsError {
				css += ";" + errorCSS
			}
			node.Get("style").Set("cssText", css)
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)

	logger.Info().Str("backend", backend.Name()).Msg("polling clipboard every animation frame")
	select {}
}

// textNode returns the element the text is written into, creating it when
// the page does not provide one.
func textNode() js.Value {
	doc := js.Global().Get("document")
	node := doc.Call("getElementById", nodeID)
	if node.IsNull() {
		node = doc.Call("createElement", "div")
		node.Set("id", nodeID)
		doc.Get("body").Call("appendChild", node)
	}
	node.Get("style").Set("cssText", nodeCSS)
	return node
}
