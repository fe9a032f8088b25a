package ports

import (
	"context"
	"io"
	"time"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// MediaStore uploads product images to object storage.
type MediaStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (*domain.ImageRef, error)
	Remove(ctx context.Context, key string) error
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// ChatProvider runs one chat completion against the LLM backend.
type ChatProvider interface {
	Complete(ctx context.Context, messages []domain.ChatMessage) (reply string, usage domain.ChatUsage, err error)
}

// ProductCache is a read-through cache for the public product listing.
type ProductCache interface {
	GetList(ctx context.Context) ([]domain.Product, bool)
	SetList(ctx context.Context, products []domain.Product, ttl time.Duration)
	Invalidate(ctx context.Context)
}
