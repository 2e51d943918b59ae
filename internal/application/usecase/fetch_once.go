package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/clipfetch/internal/application/port"
	"github.com/bnema/clipfetch/internal/logging"
)

const defaultTurnInterval = 16 * time.Millisecond

// FetchOnceUseCase reads the clipboard once and waits for the outcome.
type FetchOnceUseCase struct {
	fetcher  port.ClipboardFetcher
	loop     port.HostLoop
	interval time.Duration
}

// NewFetchOnceUseCase creates the use case. loop may be nil when completions
// are not delivered through a host loop; otherwise it is turned every
// interval while waiting.
func NewFetchOnceUseCase(fetcher port.ClipboardFetcher, loop port.HostLoop, interval time.Duration) *FetchOnceUseCase {
	if interval <= 0 {
		interval = defaultTurnInterval
	}
	return &FetchOnceUseCase{
		fetcher:  fetcher,
		loop:     loop,
		interval: interval,
	}
}

// Fetch issues one read and blocks until it resolves or ctx is done.
// Clipboard errors (clipboard.ErrNoText, ...) are returned as-is.
func (uc *FetchOnceUseCase) Fetch(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	read := uc.fetcher.FetchText(ctx)

	if uc.loop != nil {
		ticker := time.NewTicker(uc.interval)
		defer ticker.Stop()
		for !read.Resolved() {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("clipboard read via %s: %w", uc.fetcher.Backend(), ctx.Err())
			case <-read.Done():
			case <-ticker.C:
				uc.loop.Turn(ctx)
			}
		}
	}

	res, err := read.Wait(ctx)
	if err != nil {
		return "", fmt.Errorf("clipboard read via %s: %w", uc.fetcher.Backend(), err)
	}

	elapsed := time.Since(read.IssuedAt())
	if res.Err != nil {
		log.Debug().Err(res.Err).Dur("elapsed", elapsed).Msg("clipboard fetch failed")
		return "", res.Err
	}
	log.Debug().Int("len", len(res.Text)).Dur("elapsed", elapsed).Msg("clipboard fetch done")
	return res.Text, nil
}

// Backend returns the name of the backend reads go through.
func (uc *FetchOnceUseCase) Backend() string {
	return uc.fetcher.Backend()
}
