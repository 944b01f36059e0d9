package ports

import "context"

// CredentialService manages a user's RSA key pair and API key.
type CredentialService interface {
	// PublicKey returns the existing public key, provisioning a pair on first use.
	PublicKey(ctx context.Context, userID string) (string, error)
	// RegeneratePublicKey replaces the pair; ciphertexts for the old key stop working.
	RegeneratePublicKey(ctx context.Context, userID string) (string, error)
	// APIKey returns the current key or "" when none was issued.
	APIKey(ctx context.Context, userID string) (string, error)
	RegenerateAPIKey(ctx context.Context, userID string) (string, error)
}
