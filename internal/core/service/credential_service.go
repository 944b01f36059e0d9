package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
	"github.com/DhairyaPatel2210/portfolio/internal/core/ports"
	"github.com/DhairyaPatel2210/portfolio/internal/pkg/security"
)

// CredentialService manages the per-user RSA key pair and API key.
type CredentialService struct {
	repo       ports.UserRepository
	genKeyPair func() (security.KeyPair, error)
	genAPIKey  func() (string, error)
	log        zerolog.Logger
}

func NewCredentialService(repo ports.UserRepository, log zerolog.Logger) *CredentialService {
	return &CredentialService{
		repo:       repo,
		genKeyPair: security.GenerateKeyPair,
		genAPIKey:  security.GenerateAPIKey,
		log:        log,
	}
}

// PublicKey returns the stored public key, provisioning a pair on first use.
// Concurrent first calls converge on whichever pair was stored first.
func (s *CredentialService) PublicKey(ctx context.Context, userID string) (string, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.HasKeyPair() {
		return user.RSAKeys.PublicKey, nil
	}

	kp, err := s.genKeyPair()
	if err != nil {
		return "", err
	}
	stored, err := s.repo.SetRSAKeysIfAbsent(ctx, userID, domain.RSAKeys{PublicKey: kp.PublicKey, PrivateKey: kp.PrivateKey})
	if err != nil {
		return "", err
	}
	if stored {
		s.log.Info().Str("user_id", userID).Msg("key pair provisioned")
		return kp.PublicKey, nil
	}

	user, err = s.repo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if !user.HasKeyPair() {
		return "", domain.ErrUserNotFound
	}
	return user.RSAKeys.PublicKey, nil
}

// RegeneratePublicKey unconditionally replaces the key pair.
func (s *CredentialService) RegeneratePublicKey(ctx context.Context, userID string) (string, error) {
	kp, err := s.genKeyPair()
	if err != nil {
		return "", err
	}
	if err := s.repo.SetRSAKeys(ctx, userID, domain.RSAKeys{PublicKey: kp.PublicKey, PrivateKey: kp.PrivateKey}); err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", userID).Msg("key pair regenerated")
	return kp.PublicKey, nil
}

func (s *CredentialService) APIKey(ctx context.Context, userID string) (string, error) {
	return s.repo.FindAPIKey(ctx, userID)
}

// RegenerateAPIKey issues a fresh API key, replacing any previous one.
func (s *CredentialService) RegenerateAPIKey(ctx context.Context, userID string) (string, error) {
	key, err := s.genAPIKey()
	if err != nil {
		return "", err
	}
	if err := s.repo.SetAPIKey(ctx, userID, key); err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", userID).Msg("api key regenerated")
	return key, nil
}
