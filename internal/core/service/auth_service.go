package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
	"github.com/DhairyaPatel2210/portfolio/internal/core/ports"
	"github.com/DhairyaPatel2210/portfolio/internal/pkg/security"
)

// PasswordHasher abstracts the one-way password hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer abstracts session token signing.
type TokenIssuer interface {
	Issue(userID, email, domain string) (string, error)
}

// AuthService implements signup, password login and the API-key exchange.
type AuthService struct {
	repo   ports.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	log    zerolog.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(repo ports.UserRepository, hasher PasswordHasher, tokens TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput, originHost string) (*ports.AuthResult, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = NormalizeEmail(in.Email)

	switch {
	case in.FirstName == "":
		return nil, fmt.Errorf("%w: firstName is required", domain.ErrValidation)
	case in.LastName == "":
		return nil, fmt.Errorf("%w: lastName is required", domain.ErrValidation)
	case in.Email == "":
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	case in.Password == "":
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.repo.Create(ctx, &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user signed up")
	return s.issue(user, originHost)
}

// Login verifies the password. Unknown emails and wrong passwords both
// return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password, originHost string) (*ports.AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// unknown emails cost one bcrypt compare, like a wrong password
			s.hasher.Verify(password, s.dummy())
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Debug().Str("user_id", user.ID).Msg("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user, originHost)
}

// AuthenticateWithAPIKey decrypts encryptedKey with the user's private key
// and compares it to the stored API key.
func (s *AuthService) AuthenticateWithAPIKey(ctx context.Context, email, encryptedKey, originHost string) (*ports.AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || strings.TrimSpace(encryptedKey) == "" {
		return nil, fmt.Errorf("%w: email and encryptedKey are required", domain.ErrValidation)
	}

	user, err := s.repo.FindByEmailWithSecrets(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidAPIKey
		}
		return nil, err
	}
	if user.APIKey == "" || user.RSAKeys == nil || user.RSAKeys.PrivateKey == "" {
		return nil, domain.ErrInvalidAPIKey
	}

	plaintext, err := security.Decrypt(encryptedKey, user.RSAKeys.PrivateKey)
	if err != nil {
		s.log.Debug().Err(err).Str("user_id", user.ID).Msg("api key decryption failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrDecryption, domain.ErrInvalidAPIKey)
	}
	if subtle.ConstantTimeCompare([]byte(plaintext), []byte(user.APIKey)) != 1 {
		return nil, domain.ErrInvalidAPIKey
	}

	return s.issue(user, originHost)
}

func (s *AuthService) issue(user *domain.User, originHost string) (*ports.AuthResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Email, originHost)
	if err != nil {
		return nil, err
	}

	out := *user
	out.PasswordHash = ""
	out.APIKey = ""
	out.RSAKeys = nil
	return &ports.AuthResult{Token: token, User: &out}, nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("timing-equalizer")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}
