// Package usecase contains application business logic.
package usecase

import (
	"context"
	"time"

	"github.com/bnema/clipfetch/internal/application/port"
	"github.com/bnema/clipfetch/internal/logging"
	"github.com/bnema/clipfetch/pkg/clipboard"
)

// DisplayState is what a frame should show after a tick.
type DisplayState struct {
	// Text is the displayed string: clipboard text, the debug rendering of a
	// read error, or the placeholder before the first result.
	Text string
	// Changed is true when Text differs from the previous tick.
	Changed bool
	// Pending is true while a read is outstanding after this tick.
	Pending bool
	// IsError is true when Text renders a read error.
	IsError bool
	Backend string
	// UpdatedAt is when Text last changed. Zero until the first result.
	UpdatedAt time.Time
	// PendingSince is when the outstanding read was issued.
	PendingSince time.Time
	Fetches      int
	TimedOut     int
}

// DisplayClipboardOptions tunes DisplayClipboardUseCase.
type DisplayClipboardOptions struct {
	Placeholder string
	// FetchTimeout abandons an unresolved read older than this and issues a
	// new one. Zero waits forever.
	FetchTimeout time.Duration
	// Now overrides the clock.
	Now func() time.Time
}

// DisplayClipboardUseCase keeps a text node in sync with the clipboard, one
// non-blocking poll per frame. It is not safe for concurrent use; call Tick
// from the host loop only.
type DisplayClipboardUseCase struct {
	fetcher port.ClipboardFetcher
	timeout time.Duration
	now     func() time.Time

	pending      *clipboard.PendingRead
	pendingSince time.Time

	text      string
	isError   bool
	updatedAt time.Time
	fetches   int
	timedOut  int
}

// NewDisplayClipboardUseCase creates the use case. The displayed text starts
// as opts.Placeholder.
func NewDisplayClipboardUseCase(fetcher port.ClipboardFetcher, opts DisplayClipboardOptions) *DisplayClipboardUseCase {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &DisplayClipboardUseCase{
		fetcher: fetcher,
		timeout: opts.FetchTimeout,
		now:     now,
		text:    opts.Placeholder,
	}
}

// SetFetchTimeout changes the timeout for reads checked from now on.
func (uc *DisplayClipboardUseCase) SetFetchTimeout(d time.Duration) {
	uc.timeout = d
}

// Tick runs one frame: issue a read if none is outstanding, poll it, and
// apply its outcome to the displayed text.
func (uc *DisplayClipboardUseCase) Tick(ctx context.Context) DisplayState {
	log := logging.FromContext(ctx)

	if uc.pending != nil && uc.timeout > 0 && !uc.pending.Resolved() {
		if age := uc.now().Sub(uc.pendingSince); age >= uc.timeout {
			log.Debug().
				Str("read_id", uc.pending.ID()).
				Dur("age", age).
				Msg("clipboard read timed out, issuing a new one")
			uc.pending = nil
			uc.timedOut++
		}
	}

	if uc.pending == nil {
		uc.pending = uc.fetcher.FetchText(ctx)
		uc.pendingSince = uc.now()
		uc.fetches++
	}

	changed := false
	if res, ok := uc.pending.Poll(); ok {
		uc.pending = nil
		changed = uc.apply(res)
	}

	return uc.state(changed)
}

// apply sets the displayed text from res, reporting whether it changed.
func (uc *DisplayClipboardUseCase) apply(res clipboard.Result) bool {
	text, isError := res.Text, false
	if res.Err != nil {
		text, isError = clipboard.Debug(res.Err), true
	}

	if text == uc.text && isError == uc.isError && !uc.updatedAt.IsZero() {
		return false
	}
	uc.text = text
	uc.isError = isError
	uc.updatedAt = uc.now()
	return true
}

func (uc *DisplayClipboardUseCase) state(changed bool) DisplayState {
	st := DisplayState{
		Text:      uc.text,
		Changed:   changed,
		Pending:   uc.pending != nil,
		IsError:   uc.isError,
		Backend:   uc.fetcher.Backend(),
		UpdatedAt: uc.updatedAt,
		Fetches:   uc.fetches,
		TimedOut:  uc.timedOut,
	}
	if st.Pending {
		st.PendingSince = uc.pendingSince
	}
	return st
}

// Text returns the currently displayed text.
func (uc *DisplayClipboardUseCase) Text() string {
	return uc.text
}
