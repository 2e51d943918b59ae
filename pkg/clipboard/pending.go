package clipboard

import (
	"context"
	"sync/atomic"
	"time"
)

// Result is the outcome of one fetch: either Text or Err is meaningful.
type Result struct {
	Text string
	Err  error
}

// OK reports whether the fetch produced text.
func (r Result) OK() bool {
	return r.Err == nil
}

// Unwrap splits the result into the usual (value, error) pair.
func (r Result) Unwrap() (string, error) {
	return r.Text, r.Err
}

// PendingRead represents one outstanding text fetch.
//
// It starts unresolved and is resolved exactly once, either while the fetch is
// issued (synchronous backends) or later from a platform callback. The
// resolution slot is shared between the poller and the callback; it is the
// source of truth even after the caller dropped its reference.
type PendingRead struct {
	id       string
	issuedAt time.Time
	slot     atomic.Pointer[Result]
	done     chan struct{}
}

func newPendingRead(id string) *PendingRead {
	return &PendingRead{
		id:       id,
		issuedAt: time.Now(),
		done:     make(chan struct{}),
	}
}

// Ready returns a handle that is already resolved with res.
func Ready(res Result) *PendingRead {
	r := newPendingRead("")
	r.resolve(res)
	return r
}

// resolve stores res if the handle is still unresolved.
// It reports false when a previous completion already won.
func (r *PendingRead) resolve(res Result) bool {
	if !r.slot.CompareAndSwap(nil, &res) {
		return false
	}
	close(r.done)
	return true
}

// Poll returns the outcome if the read has resolved. It never blocks.
//
// While unresolved it returns false and leaves the handle untouched, which is
// the caller's cue to poll again on a later tick. Once resolved, every call
// returns the same Result; callers are expected to drop the handle after the
// first successful poll.
func (r *PendingRead) Poll() (Result, bool) {
	res := r.slot.Load()
	if res == nil {
		return Result{}, false
	}
	return *res, true
}

// Resolved reports whether an outcome is available.
func (r *PendingRead) Resolved() bool {
	return r.slot.Load() != nil
}

// ID identifies the fetch that created this handle.
func (r *PendingRead) ID() string {
	return r.id
}

// IssuedAt is the time the fetch was issued.
func (r *PendingRead) IssuedAt() time.Time {
	return r.issuedAt
}

// Done is closed once the read resolves.
func (r *PendingRead) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the read resolves or ctx is done.
// Frame-driven callers should use Poll instead.
func (r *PendingRead) Wait(ctx context.Context) (Result, error) {
	select {
	case <-r.done:
		res, _ := r.Poll()
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
