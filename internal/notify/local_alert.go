package notify

import (
	"context"

	"github.com/nandraak/siakad/internal/model"
	"github.com/rs/zerolog/log"
)

type localAlertNotifier struct{}

// NewLocalAlertNotifier returns the in-process variant: the notice is
// surfaced immediately as a log event, the way the web build of the app
// falls back to a plain alert.
func NewLocalAlertNotifier() Notifier {
	return &localAlertNotifier{}
}

func (n *localAlertNotifier) Dispatch(_ context.Context, notice model.Notice) {
	log.Info().
		Str("title", notice.Title).
		Str("body", notice.Body).
		Msg("local alert")
}
