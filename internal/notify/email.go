package notify

import (
	"context"

	"github.com/nandraak/siakad/internal/model"
	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailNotifier struct {
	client *sendgrid.Client
	from   *mail.Email
	to     *mail.Email
}

// NewEmailNotifier returns the SendGrid-backed variant, broadcasting each
// notice to a configured mailbox (typically a class mailing list).
func NewEmailNotifier(apiKey, fromAddr, toAddr string) Notifier {
	return &emailNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("SIAKAD", fromAddr),
		to:     mail.NewEmail("", toAddr),
	}
}

func (n *emailNotifier) Dispatch(_ context.Context, notice model.Notice) {
	msg := mail.NewSingleEmail(n.from, notice.Title, n.to, notice.Body, notice.Body)
	go func() {
		// Fire and forget: failures are logged, never propagated.
		if _, err := n.client.Send(msg); err != nil {
			log.Error().Err(err).Str("title", notice.Title).Msg("email notice failed")
		}
	}()
}
