package ports

import (
	"context"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

// OriginRepository persists allow-listed origins.
type OriginRepository interface {
	Create(ctx context.Context, origin *domain.Origin) (*domain.Origin, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Origin, error)
	// ListValues returns every distinct origin string across all users.
	ListValues(ctx context.Context) ([]string, error)
	DeleteForUser(ctx context.Context, id, userID string) error
}
