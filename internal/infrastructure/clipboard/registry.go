package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/clipfetch/internal/logging"
	core "github.com/bnema/clipfetch/pkg/clipboard"
)

// BackendAuto selects the best backend for the running platform.
const BackendAuto = "auto"

var (
	// ErrUnknownBackend is returned for a backend name Open does not know.
	ErrUnknownBackend = errors.New("unknown clipboard backend")

	// ErrBackendUnavailable is returned when the requested backend is not
	// usable on this platform or build.
	ErrBackendUnavailable = errors.New("clipboard backend unavailable")
)

// Pumper is implemented by backends that own an event loop the host must
// turn once per tick.
type Pumper interface {
	Pump(ctx context.Context) int
}

// Options selects and configures a backend.
type Options struct {
	// Kind is a backend name or BackendAuto.
	Kind string
	// Worker runs synchronous readers on a goroutine and delivers results
	// through Post.
	Worker      bool
	MaxInFlight int64
	// Post schedules a callback on the host loop. Required when Worker is set.
	Post func(func())

	WebEmuSource     string
	WebEmuPermission Permission
	WebEmuLatency    int
}

// Info describes a backend for listings.
type Info struct {
	Name      string
	Mode      string
	Available bool
	Note      string
}

// newToolsReader is replaced in tests.
var newToolsReader = NewToolsReader

// Available lists all backends and whether they can be opened here.
func Available() []Info {
	tools := newToolsReader()
	toolNote := "wl-paste, xclip or xsel"
	if tools.Available() {
		toolNote = "using " + tools.Tool()
	}
	return []Info{
		{Name: BackendNative, Mode: "sync", Available: NativeAvailable(), Note: "OS clipboard API via go-nativeclipboard"},
		{Name: BackendTools, Mode: "sync", Available: tools.Available(), Note: toolNote},
		{Name: BackendAtotto, Mode: "sync", Available: AtottoAvailable(), Note: "github.com/atotto/clipboard"},
		{Name: BackendDesign, Mode: "sync", Available: DesignAvailable(), Note: "golang.design/x/clipboard"},
		{Name: BackendWeb, Mode: "async", Available: WebAvailable(), Note: "navigator.clipboard.readText (js/wasm)"},
		{Name: BackendWebEmu, Mode: "async", Available: true, Note: "emulated browser clipboard on sobek"},
	}
}

// Open creates the backend described by opts. The returned Pumper is non-nil
// only for backends whose event loop is driven by the host.
func Open(ctx context.Context, opts Options) (core.Backend, Pumper, error) {
	log := logging.FromContext(ctx)

	kind := opts.Kind
	if kind == "" {
		kind = BackendAuto
	}

	switch kind {
	case BackendWeb:
		if !WebAvailable() {
			return nil, nil, fmt.Errorf("%w: %s requires a js/wasm build", ErrBackendUnavailable, kind)
		}
		return core.NewAsyncBackend(BackendWeb, NewWebReader()), nil, nil

	case BackendWebEmu:
		source, _, err := openReader(opts.WebEmuSource)
		if err != nil {
			return nil, nil, fmt.Errorf("webemu source: %w", err)
		}
		emu, err := NewWebEmulator(source, opts.WebEmuPermission, opts.WebEmuLatency)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("permission", string(emu.Permission())).Msg("webemu backend ready")
		return core.NewAsyncBackend(BackendWebEmu, emu), emu, nil

	case BackendAuto:
		if WebAvailable() {
			return core.NewAsyncBackend(BackendWeb, NewWebReader()), nil, nil
		}
	}

	reader, name, err := openReader(kind)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("backend", name).Bool("worker", opts.Worker).Msg("clipboard backend selected")

	if opts.Worker {
		if opts.Post == nil {
			return nil, nil, errors.New("worker backend requires a post function")
		}
		return core.NewWorkerBackend(name, reader, opts.Post, opts.MaxInFlight), nil, nil
	}
	return core.NewSyncBackend(name, reader), nil, nil
}

// autoReader picks wl-paste on Wayland sessions, where the native backend
// only sees the XWayland selection, then native, then the X11 tools, then
// atotto, then golang.design.
func autoReader() (core.Reader, string, error) {
	tools := newToolsReader()
	if tools.Tool() == "wl-paste" {
		return tools, BackendTools, nil
	}
	if NativeAvailable() {
		return NewNativeReader(), BackendNative, nil
	}
	if tools.Available() {
		return tools, BackendTools, nil
	}
	if AtottoAvailable() {
		return NewAtottoReader(), BackendAtotto, nil
	}
	if DesignAvailable() {
		return NewDesignReader(), BackendDesign, nil
	}
	return nil, "", fmt.Errorf("%w: no clipboard backend available on this platform", ErrBackendUnavailable)
}

// openReader opens a synchronous reader by name.
func openReader(kind string) (core.Reader, string, error) {
	switch kind {
	case "", BackendAuto:
		return autoReader()
	case BackendNative:
		if !NativeAvailable() {
			return nil, "", fmt.Errorf("%w: %s", ErrBackendUnavailable, kind)
		}
		return NewNativeReader(), BackendNative, nil
	case BackendTools:
		tools := newToolsReader()
		if !tools.Available() {
			return nil, "", fmt.Errorf("%w: %s (install wl-clipboard, xclip or xsel)", ErrBackendUnavailable, kind)
		}
		return tools, BackendTools, nil
	case BackendAtotto:
		if !AtottoAvailable() {
			return nil, "", fmt.Errorf("%w: %s", ErrBackendUnavailable, kind)
		}
		return NewAtottoReader(), BackendAtotto, nil
	case BackendDesign:
		if !DesignAvailable() {
			return nil, "", fmt.Errorf("%w: %s", ErrBackendUnavailable, kind)
		}
		return NewDesignReader(), BackendDesign, nil
	case BackendWeb, BackendWebEmu:
		return nil, "", fmt.Errorf("%w: %s is asynchronous and cannot serve as a reader", ErrBackendUnavailable, kind)
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}

// Names lists the backend names accepted by Open.
func Names() []string {
	return []string{BackendAuto, BackendNative, BackendTools, BackendAtotto, BackendDesign, BackendWeb, BackendWebEmu}
}
