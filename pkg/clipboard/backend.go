package clipboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// Reader reads the clipboard text synchronously.
type Reader interface {
	ReadText(ctx context.Context) (string, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(ctx context.Context) (string, error)

// ReadText calls f.
func (f ReaderFunc) ReadText(ctx context.Context) (string, error) {
	return f(ctx)
}

// AsyncReader requests the clipboard text from a platform that only reports
// results through a later callback.
type AsyncReader interface {
	RequestText(ctx context.Context, complete Completion)
}

// syncBackend performs the read inside Start.
type syncBackend struct {
	name   string
	reader Reader
}

// NewSyncBackend wraps a blocking Reader. Handles it produces are resolved by
// the time FetchText returns.
func NewSyncBackend(name string, r Reader) Backend {
	return &syncBackend{name: name, reader: r}
}

func (b *syncBackend) Name() string { return b.name }

func (b *syncBackend) Start(ctx context.Context, complete Completion) {
	text, err := b.reader.ReadText(ctx)
	complete(text, err)
}

// asyncBackend forwards to a callback-driven platform API.
type asyncBackend struct {
	name   string
	reader AsyncReader
}

// NewAsyncBackend wraps a callback-driven AsyncReader. Handles it produces
// stay unresolved until the platform invokes the completion.
func NewAsyncBackend(name string, r AsyncReader) Backend {
	return &asyncBackend{name: name, reader: r}
}

func (b *asyncBackend) Name() string { return b.name }

func (b *asyncBackend) Start(ctx context.Context, complete Completion) {
	b.reader.RequestText(ctx, complete)
}

// workerBackend runs a blocking Reader off the host loop and delivers the
// outcome back through the host's event queue.
type workerBackend struct {
	name   string
	reader Reader
	post   func(func())
	sem    *semaphore.Weighted
}

// NewWorkerBackend runs reads from r on a goroutine and posts each completion
// with post, so it is applied on the host loop rather than the worker.
// maxInFlight bounds concurrent reads; reads over the bound fail with a
// PlatformError instead of queueing.
//
// This is the only backend that starts goroutines. It steps outside the
// single-threaded model the other backends keep, so it is opt-in
// (clipboard.worker) and its completions only become visible once the host
// drains post's queue.
func NewWorkerBackend(name string, r Reader, post func(func()), maxInFlight int64) Backend {
	if post == nil {
		panic("clipboard.NewWorkerBackend: post function cannot be nil")
	}
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return &workerBackend{
		name:   name,
		reader: r,
		post:   post,
		sem:    semaphore.NewWeighted(maxInFlight),
	}
}

func (b *workerBackend) Name() string { return b.name }

func (b *workerBackend) Start(ctx context.Context, complete Completion) {
	if !b.sem.TryAcquire(1) {
		complete("", &PlatformError{
			Backend: b.name,
			Op:      "start",
			Detail:  "too many clipboard reads in flight",
		})
		return
	}

	// The read outlives the caller's tick; only values are carried over.
	readCtx := context.WithoutCancel(ctx)
	go func() {
		defer b.sem.Release(1)
		text, err := b.read(readCtx)
		b.post(func() { complete(text, err) })
	}()
}

func (b *workerBackend) read(ctx context.Context) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PlatformError{Backend: b.name, Op: "read", Detail: fmt.Sprintf("panic: %v", r)}
		}
	}()
	return b.reader.ReadText(ctx)
}
