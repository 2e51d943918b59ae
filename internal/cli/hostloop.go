package cli

import (
	"context"

	infraclip "github.com/bnema/clipfetch/internal/infrastructure/clipboard"
	"github.com/bnema/clipfetch/internal/logging"
	"github.com/bnema/clipfetch/internal/ui/mainloop"
)

// hostLoop is one turn of the CLI's frame loop: run callbacks posted by
// workers and config reloads, then advance the backend's promise queue.
type hostLoop struct {
	queue  *mainloop.Queue
	pumper infraclip.Pumper
}

// Turn implements port.HostLoop.
func (l *hostLoop) Turn(ctx context.Context) {
	ran := l.queue.Drain()
	settled := 0
	if l.pumper != nil {
		settled = l.pumper.Pump(ctx)
	}
	if ran > 0 || settled > 0 {
		logging.FromContext(ctx).Trace().Int("callbacks", ran).Int("settled", settled).Msg("host loop turn")
	}
}
