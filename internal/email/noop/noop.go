package noop

import (
	"context"
	"log"

	"gstgenius/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) Send(_ context.Context, to, subject, _, textBody string) error {
	log.Printf("[NOOP EMAIL] To %s: %s\n%s", to, subject, textBody)
	return nil
}
