package ports

import (
	"context"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

// ContactService reads and replaces the caller's contact block. Get never
// returns the write-only fields.
type ContactService interface {
	Get(ctx context.Context, userID string) (*domain.Contact, error)
	Update(ctx context.Context, userID string, contact domain.Contact) (*domain.Contact, error)
}
