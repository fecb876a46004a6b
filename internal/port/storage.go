package port

import (
	"context"
	"io"
	"time"
)

// ObjectStorage stores uploaded files (party logos) and hands out
// time-limited download URLs.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
