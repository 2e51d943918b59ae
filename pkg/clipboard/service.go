// Package clipboard provides non-blocking access to the system clipboard text
// through a single fetch/poll API.
//
// A Service issues fetches; each fetch returns a PendingRead that the caller
// keeps across ticks of its own loop and polls until it yields a Result.
// Synchronous backends hand back a handle that is already resolved, while
// asynchronous backends resolve it later from a platform callback.
package clipboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Completion delivers the outcome of a backend read. Backends call it once.
type Completion func(text string, err error)

// Backend performs the platform specific part of a fetch.
//
// Start begins a read and arranges for complete to be called with its
// outcome. Synchronous backends call complete before Start returns;
// asynchronous backends return immediately and call it from their event queue.
type Backend interface {
	Name() string
	Start(ctx context.Context, complete Completion)
}

// Service is the entry point for clipboard fetches. It keeps no per-request
// state, so concurrent and overlapping fetches are independent.
type Service struct {
	backend Backend
}

// New creates a Service reading through backend.
func New(backend Backend) *Service {
	return &Service{backend: backend}
}

// Backend returns the name of the active backend.
func (s *Service) Backend() string {
	if s == nil || s.backend == nil {
		return "none"
	}
	return s.backend.Name()
}

// FetchText starts reading the clipboard text and returns its handle.
// It does not fail: errors are reported through the handle's Result.
func (s *Service) FetchText(ctx context.Context) *PendingRead {
	read := newPendingRead(uuid.NewString())
	name := s.Backend()
	log := zerolog.Ctx(ctx).With().
		Str("read_id", read.ID()).
		Str("backend", name).
		Logger()

	if s == nil || s.backend == nil {
		read.resolve(Result{Err: &PlatformError{Backend: name, Op: "fetch", Detail: "no clipboard backend configured"}})
		log.Debug().Msg("clipboard fetch without backend")
		return read
	}

	complete := func(text string, err error) {
		res := Result{Text: text, Err: normalize(name, err)}
		if !read.resolve(res) {
			log.Warn().Msg("clipboard completion ignored: read already resolved")
			return
		}
		if res.Err != nil {
			log.Debug().Err(res.Err).Msg("clipboard read failed")
			return
		}
		log.Debug().Int("len", len(text)).Msg("clipboard read resolved")
	}

	s.start(ctx, complete)

	log.Debug().Bool("sync", read.Resolved()).Msg("clipboard fetch issued")
	return read
}

func (s *Service) start(ctx context.Context, complete Completion) {
	defer func() {
		if r := recover(); r != nil {
			complete("", &PlatformError{
				Backend: s.backend.Name(),
				Op:      "start",
				Detail:  fmt.Sprintf("panic: %v", r),
			})
		}
	}()
	s.backend.Start(ctx, complete)
}
