package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
	"github.com/DhairyaPatel2210/portfolio/internal/core/ports"
)

// OriginService manages stored origins and computes the CORS allow-list as
// stored origins plus the built-in origins of the running environment.
type OriginService struct {
	repo     ports.OriginRepository
	builtins map[string]struct{}
	log      zerolog.Logger
}

func NewOriginService(repo ports.OriginRepository, builtins []string, log zerolog.Logger) *OriginService {
	set := make(map[string]struct{}, len(builtins))
	for _, o := range builtins {
		if o = strings.TrimSpace(o); o != "" {
			set[o] = struct{}{}
		}
	}
	return &OriginService{repo: repo, builtins: set, log: log}
}

func (s *OriginService) List(ctx context.Context, userID string) ([]*domain.Origin, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *OriginService) ListAll(ctx context.Context) ([]string, error) {
	return s.repo.ListValues(ctx)
}

func (s *OriginService) Add(ctx context.Context, userID, origin, description string) (*domain.Origin, error) {
	origin, err := NormalizeOrigin(origin)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Origin{
		Value:       origin,
		Description: strings.TrimSpace(description),
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("origin", origin).Msg("origin added")
	return created, nil
}

func (s *OriginService) Remove(ctx context.Context, userID, id string) error {
	if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Str("origin_id", id).Msg("origin removed")
	return nil
}

// IsAllowed answers a CORS decision against stored plus built-in origins.
// When the stored set cannot be read the whole list is unknown, so the
// error is returned for every origin, built-in ones included.
func (s *OriginService) IsAllowed(ctx context.Context, origin string) (bool, error) {
	if origin == "" {
		return false, nil
	}

	stored, err := s.repo.ListValues(ctx)
	if err != nil {
		return false, err
	}
	if _, ok := s.builtins[origin]; ok {
		return true, nil
	}
	for _, o := range stored {
		if o == origin {
			return true, nil
		}
	}
	return false, nil
}

// NormalizeOrigin reduces a URL to the scheme://host[:port] form browsers
// send in the Origin header. A trailing "/" is dropped; any other path,
// query, fragment or userinfo is rejected.
func NormalizeOrigin(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: origin is required", domain.ErrValidation)
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || u.Hostname() == "" {
		return "", fmt.Errorf("%w: origin must look like https://host[:port]", domain.ErrValidation)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("%w: origin scheme must be http or https", domain.ErrValidation)
	}
	if u.User != nil || (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" || u.ForceQuery {
		return "", fmt.Errorf("%w: origin must not contain a path, query or fragment", domain.ErrValidation)
	}

	return scheme + "://" + strings.ToLower(u.Host), nil
}
