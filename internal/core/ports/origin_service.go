package ports

import (
	"context"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

// OriginService manages allow-listed origins and answers CORS decisions.
type OriginService interface {
	List(ctx context.Context, userID string) ([]*domain.Origin, error)
	ListAll(ctx context.Context) ([]string, error)
	Add(ctx context.Context, userID, origin, description string) (*domain.Origin, error)
	Remove(ctx context.Context, userID, id string) error
	// IsAllowed reports whether origin is in the stored set or the built-in
	// set for the running environment.
	IsAllowed(ctx context.Context, origin string) (bool, error)
}
