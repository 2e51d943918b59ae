package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/grafana/sobek"

	"github.com/bnema/clipfetch/internal/logging"
	core "github.com/bnema/clipfetch/pkg/clipboard"
)

// BackendWebEmu is the name of the emulated browser clipboard backend.
const BackendWebEmu = "webemu"

// Permission mirrors the browser's clipboard-read permission state.
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	// PermissionPrompt leaves reads pending forever, like an unanswered prompt.
	PermissionPrompt Permission = "prompt"
)

// webEmuBootstrap installs a minimal navigator.clipboard whose readText
// promises are settled by the host, one event-loop turn at a time.
const webEmuBootstrap = `
(function (host) {
  var pending = {};
  globalThis.navigator = {
    clipboard: {
      readText: function () {
        return new Promise(function (resolve, reject) {
          pending[host.enqueue()] = { resolve: resolve, reject: reject };
        });
      }
    }
  };
  globalThis.__settle = function (pid, ok, value, name) {
    var p = pending[pid];
    if (!p) { return false; }
    delete pending[pid];
    if (ok) {
      p.resolve(value);
    } else {
      var e = new Error(value);
      e.name = name;
      p.reject(e);
    }
    return true;
  };
  globalThis.__request = function (rid) {
    navigator.clipboard.readText().then(
      function (text) { host.done(rid, String(text), "", ""); },
      function (err) {
        var name = (err && err.name) ? String(err.name) : "Error";
        var message = (err && err.message) ? String(err.message) : String(err);
        host.done(rid, "", name, message);
      }
    );
  };
})(__host);
`

// maxPendingPromises bounds unsettled readText promises. Past it the oldest
// is rejected with AbortError; callers that abandon reads under an unanswered
// prompt would otherwise grow the queue forever.
const maxPendingPromises = 16

type webEmuPromise struct {
	pid   int
	turns int
}

// WebEmulator runs the browser clipboard flow on an embedded JavaScript
// engine. Each read creates a real JS promise; promises settle only when the
// host pumps the emulated event loop, so results arrive ticks after the
// request, the same way they do in a browser.
type WebEmulator struct {
	mu         sync.Mutex
	vm         *sobek.Runtime
	request    sobek.Callable
	settle     sobek.Callable
	source     core.Reader
	permission Permission
	latency    int

	nextPID   int
	nextRID   int
	queue     []webEmuPromise
	callbacks map[int]core.Completion
}

// NewWebEmulator creates an emulator that serves text from source.
// latencyTicks is the number of event-loop turns before a promise settles.
func NewWebEmulator(source core.Reader, permission Permission, latencyTicks int) (*WebEmulator, error) {
	if source == nil {
		return nil, errors.New("webemu: source reader is nil")
	}
	if latencyTicks < 1 {
		latencyTicks = 1
	}

	e := &WebEmulator{
		vm:         sobek.New(),
		source:     source,
		permission: normalizePermission(permission),
		latency:    latencyTicks,
		callbacks:  make(map[int]core.Completion),
	}

	host := map[string]any{
		"enqueue": e.enqueue,
		"done":    e.done,
	}
	if err := e.vm.Set("__host", host); err != nil {
		return nil, fmt.Errorf("webemu: install host bindings: %w", err)
	}
	if _, err := e.vm.RunString(webEmuBootstrap); err != nil {
		return nil, fmt.Errorf("webemu: bootstrap: %w", err)
	}

	var ok bool
	if e.request, ok = sobek.AssertFunction(e.vm.Get("__request")); !ok {
		return nil, errors.New("webemu: __request is not a function")
	}
	if e.settle, ok = sobek.AssertFunction(e.vm.Get("__settle")); !ok {
		return nil, errors.New("webemu: __settle is not a function")
	}
	return e, nil
}

func normalizePermission(p Permission) Permission {
	switch p {
	case PermissionGranted, PermissionDenied, PermissionPrompt:
		return p
	default:
		return PermissionGranted
	}
}

// SetPermission changes the permission state for promises settled from now on.
func (e *WebEmulator) SetPermission(p Permission) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.permission = normalizePermission(p)
}

// Permission returns the current permission state.
func (e *WebEmulator) Permission() Permission {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.permission
}

// RequestText implements core.AsyncReader. It calls
// navigator.clipboard.readText() in the engine and returns before the
// promise settles.
func (e *WebEmulator) RequestText(ctx context.Context, complete core.Completion) {
	e.mu.Lock()
	rid := e.nextRID
	e.nextRID++
	e.callbacks[rid] = complete
	_, err := e.request(sobek.Undefined(), e.vm.ToValue(rid))
	if err != nil {
		delete(e.callbacks, rid)
	}
	evicted := e.evictLocked(ctx)
	e.mu.Unlock()

	if evicted > 0 {
		logging.FromContext(ctx).Debug().Int("evicted", evicted).Msg("webemu rejected stale readText promises")
	}

	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("webemu readText threw")
		complete("", &core.PlatformError{Backend: BackendWebEmu, Op: "readText", Detail: err.Error(), Err: err})
	}
}

// evictLocked rejects the oldest promises until at most maxPendingPromises
// remain. Must be called with e.mu held.
func (e *WebEmulator) evictLocked(ctx context.Context) int {
	n := 0
	for len(e.queue) > maxPendingPromises {
		oldest := e.queue[0]
		e.queue = e.queue[1:]
		if _, err := e.settle(sobek.Undefined(), e.vm.ToValue(oldest.pid), e.vm.ToValue(false),
			e.vm.ToValue("superseded by a newer readText call"), e.vm.ToValue("AbortError")); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Int("pid", oldest.pid).Msg("webemu settle failed")
		}
		n++
	}
	return n
}

// Pending returns the number of unsettled readText promises.
func (e *WebEmulator) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// Pump runs one turn of the emulated event loop and settles every promise
// whose latency has elapsed. It returns the number of promises settled.
// Completions run synchronously inside Pump.
func (e *WebEmulator) Pump(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.permission == PermissionPrompt || len(e.queue) == 0 {
		return 0
	}

	var due []int
	kept := e.queue[:0]
	for _, p := range e.queue {
		p.turns--
		if p.turns <= 0 {
			due = append(due, p.pid)
			continue
		}
		kept = append(kept, p)
	}
	e.queue = kept

	log := logging.FromContext(ctx)
	for _, pid := range due {
		ok, value, name := e.outcome(ctx)
		if _, err := e.settle(sobek.Undefined(),
			e.vm.ToValue(pid), e.vm.ToValue(ok), e.vm.ToValue(value), e.vm.ToValue(name)); err != nil {
			log.Warn().Err(err).Int("pid", pid).Msg("webemu settle failed")
		}
	}
	return len(due)
}

// outcome decides how a due promise settles, the way a browser would.
func (e *WebEmulator) outcome(ctx context.Context) (ok bool, value, name string) {
	if e.permission == PermissionDenied {
		return false, "Read permission denied.", "NotAllowedError"
	}

	text, err := e.source.ReadText(ctx)
	switch {
	case err == nil:
		return true, text, ""
	case errors.Is(err, core.ErrNoText):
		return true, "", ""
	case errors.Is(err, core.ErrAccessDenied):
		return false, "Read permission denied.", "NotAllowedError"
	default:
		return false, err.Error(), "Error"
	}
}

// enqueue is called from readText while e.mu is held.
func (e *WebEmulator) enqueue() int {
	pid := e.nextPID
	e.nextPID++
	e.queue = append(e.queue, webEmuPromise{pid: pid, turns: e.latency})
	return pid
}

// done is called from promise reactions while e.mu is held.
func (e *WebEmulator) done(rid int, text, name, message string) {
	complete, ok := e.callbacks[rid]
	if !ok {
		return
	}
	delete(e.callbacks, rid)

	if name != "" {
		complete("", mapDOMError(BackendWebEmu, name, message))
		return
	}
	completeText(complete, text)
}
