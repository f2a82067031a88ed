package email

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const reminderEmailTimeout = 5 * time.Second

// SendSessionReminder sends a session reminder email asynchronously. The
// send is detached from the caller's context so a scheduler tick finishing
// does not abort an in-flight delivery.
func SendSessionReminder(ctx context.Context, client Sender, recipient string, message Message, logger *zerolog.Logger) {
	if client == nil {
		return
	}
	if message.Subject == "" || message.Body == "" {
		return
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return
	}

	go func() {
		sendCtx, cancel := newEmailContext(ctx, reminderEmailTimeout)
		defer cancel()
		if err := client.Send(sendCtx, recipient, message.Subject, message.Body); err != nil {
			if logger != nil {
				logger.Error().Err(err).Str("recipient", recipient).Msg("Failed to send session reminder email")
			}
			return
		}
		if logger != nil {
			logger.Info().Str("recipient", recipient).Msg("Session reminder email sent")
		}
	}()
}
