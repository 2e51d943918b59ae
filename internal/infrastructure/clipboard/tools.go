// Package clipboard provides platform clipboard backends for pkg/clipboard.
package clipboard

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/clipfetch/internal/logging"
	core "github.com/bnema/clipfetch/pkg/clipboard"
)

// BackendTools is the name of the command-line tool backend.
const BackendTools = "tools"

// ToolsReader reads the clipboard with system clipboard tools.
// Uses wl-paste for Wayland, falls back to xclip or xsel for X11.
type ToolsReader struct {
	pasteCmd string
	lookPath func(string) (string, error)
	getenv   func(string) string
}

// NewToolsReader detects Wayland vs X11 and selects the paste tool.
func NewToolsReader() *ToolsReader {
	r := &ToolsReader{lookPath: exec.LookPath, getenv: os.Getenv}
	r.detect()
	return r
}

func (r *ToolsReader) detect() {
	if r.getenv("WAYLAND_DISPLAY") != "" {
		if path, err := r.lookPath("wl-paste"); err == nil {
			r.pasteCmd = path
			return
		}
	}

	if r.getenv("DISPLAY") != "" {
		if path, err := r.lookPath("xclip"); err == nil {
			r.pasteCmd = path
		} else if path, err := r.lookPath("xsel"); err == nil {
			r.pasteCmd = path
		}
	}
}

// Available reports whether a paste tool was found.
func (r *ToolsReader) Available() bool {
	return r.pasteCmd != ""
}

// Tool returns the selected paste tool's base name.
func (r *ToolsReader) Tool() string {
	if r.pasteCmd == "" {
		return ""
	}
	return filepath.Base(r.pasteCmd)
}

func (r *ToolsReader) command(ctx context.Context) (*exec.Cmd, error) {
	switch r.Tool() {
	case "wl-paste":
		return exec.CommandContext(ctx, r.pasteCmd, "--no-newline", "--type", "text"), nil
	case "xclip":
		return exec.CommandContext(ctx, r.pasteCmd, "-selection", "clipboard", "-o"), nil
	case "xsel":
		return exec.CommandContext(ctx, r.pasteCmd, "--clipboard", "--output"), nil
	case "":
		return nil, &core.PlatformError{
			Backend: BackendTools,
			Op:      "read",
			Detail:  "no clipboard tool available (install wl-clipboard, xclip or xsel)",
		}
	default:
		return nil, &core.PlatformError{
			Backend: BackendTools,
			Op:      "read",
			Detail:  "unknown clipboard tool: " + r.pasteCmd,
		}
	}
}

// ReadText reads text from the clipboard.
func (r *ToolsReader) ReadText(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	cmd, err := r.command(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("clipboard read failed")
		return "", err
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		classified := classifyToolError(BackendTools, r.Tool(), stderr.String(), err)
		log.Debug().Err(classified).Str("tool", r.Tool()).Msg("clipboard read failed")
		return "", classified
	}

	// xsel exits 0 with no output when the selection is empty.
	if len(out) == 0 && r.Tool() == "xsel" {
		return "", core.ErrNoText
	}

	log.Debug().Str("tool", r.Tool()).Int("len", len(out)).Msg("clipboard read success")
	return string(out), nil
}

// noTextMarkers are stderr fragments the paste tools print when the
// clipboard is empty or holds no text target.
var noTextMarkers = []string{
	"nothing is copied",
	"no selection",
	"no suitable type of content",
	"target string not available",
	"target utf8_string not available",
	"target text not available",
}

var deniedMarkers = []string{
	"permission denied",
	"not authorized",
}

func classifyToolError(backend, tool, stderr string, err error) error {
	msg := strings.ToLower(strings.TrimSpace(stderr))
	for _, m := range noTextMarkers {
		if strings.Contains(msg, m) {
			return core.ErrNoText
		}
	}
	for _, m := range deniedMarkers {
		if strings.Contains(msg, m) {
			return core.ErrAccessDenied
		}
	}

	detail := strings.TrimSpace(stderr)
	var exitErr *exec.ExitError
	if detail == "" && !errors.As(err, &exitErr) {
		detail = err.Error()
	}
	if detail == "" {
		detail = tool + ": " + err.Error()
	}
	return &core.PlatformError{Backend: backend, Op: "read", Detail: detail, Err: err}
}
