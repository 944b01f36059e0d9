package ports

import (
	"context"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

// UserRepository is the credential store. Default reads never return the
// API key or the private half of the RSA key pair.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailWithSecrets also loads APIKey and RSAKeys.PrivateKey.
	FindByEmailWithSecrets(ctx context.Context, email string) (*domain.User, error)
	// FindAPIKey returns the stored API key, or "" when none was issued.
	FindAPIKey(ctx context.Context, id string) (string, error)

	SetAPIKey(ctx context.Context, id, apiKey string) error
	SetRSAKeys(ctx context.Context, id string, keys domain.RSAKeys) error
	// SetRSAKeysIfAbsent stores keys only when the user has none and
	// reports whether the write happened.
	SetRSAKeysIfAbsent(ctx context.Context, id string, keys domain.RSAKeys) (bool, error)

	UpdateProfile(ctx context.Context, id string, profile domain.Profile) (*domain.User, error)

	// FindContact returns only the public part of the contact block.
	FindContact(ctx context.Context, id string) (*domain.Contact, error)
	// UpdateContact replaces the contact block. An empty SendGridAPIKey
	// keeps the stored one.
	UpdateContact(ctx context.Context, id string, contact domain.Contact) error
}
