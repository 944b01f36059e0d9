package service

import (
	"context"
	"strings"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
	"github.com/DhairyaPatel2210/portfolio/internal/core/ports"
)

// ProfileService reads and edits the caller's own profile fields.
type ProfileService struct {
	repo ports.UserRepository
}

func NewProfileService(repo ports.UserRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *ProfileService) Update(ctx context.Context, userID string, p domain.Profile) (*domain.User, error) {
	p.About = strings.TrimSpace(p.About)
	p.Status = strings.TrimSpace(p.Status)
	p.SEO.Title = strings.TrimSpace(p.SEO.Title)
	p.SEO.Description = strings.TrimSpace(p.SEO.Description)
	p.Interests.BusinessDomain = cleanTags(p.Interests.BusinessDomain)
	p.Interests.ProgrammingLanguage = cleanTags(p.Interests.ProgrammingLanguage)
	p.Interests.Framework = cleanTags(p.Interests.Framework)
	p.SEO.Keywords = cleanTags(p.SEO.Keywords)

	return s.repo.UpdateProfile(ctx, userID, p)
}

// cleanTags trims entries and drops blanks and duplicates, keeping order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
