package ports

import (
	"context"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, profile domain.Profile) (*domain.User, error)
}
