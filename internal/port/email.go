package port

import "context"

// EmailSender delivers transactional mail (invoice share links).
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}
