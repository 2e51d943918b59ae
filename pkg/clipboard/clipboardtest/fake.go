// Package clipboardtest provides in-memory clipboard backends for tests.
package clipboardtest

import (
	"context"
	"sync"

	"github.com/bnema/clipfetch/pkg/clipboard"
)

// Fake is a synchronous in-memory clipboard.
type Fake struct {
	mu      sync.Mutex
	text    string
	hasText bool
	err     error
	reads   int
}

// NewFake returns an empty fake clipboard.
func NewFake() *Fake {
	return &Fake{}
}

// SetText places text on the clipboard. The empty string is valid text.
func (f *Fake) SetText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
	f.hasText = true
	f.err = nil
}

// SetNonText simulates non-text content such as an image.
func (f *Fake) SetNonText() {
	f.Clear()
}

// Clear empties the clipboard.
func (f *Fake) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = ""
	f.hasText = false
	f.err = nil
}

// Deny makes subsequent reads fail with clipboard.ErrAccessDenied.
func (f *Fake) Deny() {
	f.Fail(clipboard.ErrAccessDenied)
}

// Fail makes subsequent reads fail with err.
func (f *Fake) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Reads returns how many reads were performed.
func (f *Fake) Reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

// ReadText implements clipboard.Reader.
func (f *Fake) ReadText(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.err != nil {
		return "", f.err
	}
	if !f.hasText {
		return "", clipboard.ErrNoText
	}
	return f.text, nil
}

// Backend wraps the fake in a synchronous backend named "fake".
func (f *Fake) Backend() clipboard.Backend {
	return clipboard.NewSyncBackend("fake", f)
}

// FakeAsync records read requests and completes them only when told to.
type FakeAsync struct {
	mu      sync.Mutex
	pending []clipboard.Completion
}

// NewFakeAsync returns a callback-driven fake with no outstanding requests.
func NewFakeAsync() *FakeAsync {
	return &FakeAsync{}
}

// RequestText implements clipboard.AsyncReader.
func (f *FakeAsync) RequestText(_ context.Context, complete clipboard.Completion) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, complete)
}

// Pending returns the number of requests whose callback has not fired.
func (f *FakeAsync) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.pending {
		if c != nil {
			n++
		}
	}
	return n
}

// Requests returns the number of requests ever made.
func (f *FakeAsync) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// Fire invokes the callback of request i (in issue order).
// It reports false if the request does not exist or already fired.
func (f *FakeAsync) Fire(i int, text string, err error) bool {
	f.mu.Lock()
	if i < 0 || i >= len(f.pending) || f.pending[i] == nil {
		f.mu.Unlock()
		return false
	}
	complete := f.pending[i]
	f.pending[i] = nil
	f.mu.Unlock()

	complete(text, err)
	return true
}

// FireAll completes every outstanding request with the same outcome.
func (f *FakeAsync) FireAll(text string, err error) int {
	f.mu.Lock()
	n := len(f.pending)
	f.mu.Unlock()

	fired := 0
	for i := 0; i < n; i++ {
		if f.Fire(i, text, err) {
			fired++
		}
	}
	return fired
}

// Drop forgets request i without calling it, like a platform call that
// fails silently.
func (f *FakeAsync) Drop(i int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i >= 0 && i < len(f.pending) {
		f.pending[i] = nil
	}
}

// Backend wraps the fake in an asynchronous backend named "fake-async".
func (f *FakeAsync) Backend() clipboard.Backend {
	return clipboard.NewAsyncBackend("fake-async", f)
}
