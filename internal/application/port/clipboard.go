package port

import (
	"context"

	"github.com/bnema/clipfetch/pkg/clipboard"
)

// ClipboardFetcher issues non-blocking clipboard text reads.
// *clipboard.Service is the production implementation.
type ClipboardFetcher interface {
	// FetchText starts a read and returns its handle without blocking.
	FetchText(ctx context.Context) *clipboard.PendingRead

	// Backend returns the name of the backend serving reads.
	Backend() string
}

// HostLoop runs one turn of the host event loop: queued completions are
// applied and backend event loops are pumped.
type HostLoop interface {
	Turn(ctx context.Context)
}
