package port

import (
	"context"

	"gstgenius/internal/domain"
)

// DraftExtractor turns a free-text transaction description into a partial
// draft update. Implementations are black boxes; callers must treat failures
// as leaving the draft untouched.
type DraftExtractor interface {
	Extract(ctx context.Context, prompt string) (domain.DraftPatch, error)
}
