package notify

import (
	"context"
	"time"

	"github.com/nandraak/siakad/internal/model"
	"github.com/rs/zerolog/log"
)

type systemScheduledNotifier struct {
	delay time.Duration
}

// NewSystemScheduledNotifier returns the variant that hands the notice to
// the system after an optional delay, mirroring a scheduled push
// notification. Dispatch returns immediately; the caller never learns
// whether delivery happened.
func NewSystemScheduledNotifier(delay time.Duration) Notifier {
	return &systemScheduledNotifier{delay: delay}
}

func (n *systemScheduledNotifier) Dispatch(ctx context.Context, notice model.Notice) {
	go func() {
		if n.delay > 0 {
			select {
			case <-time.After(n.delay):
			case <-ctx.Done():
				return
			}
		}
		log.Info().
			Str("title", notice.Title).
			Str("body", notice.Body).
			Dur("delay", n.delay).
			Msg("system notification dispatched")
	}()
}
