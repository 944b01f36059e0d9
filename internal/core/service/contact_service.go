package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
	"github.com/DhairyaPatel2210/portfolio/internal/core/ports"
)

type ContactService struct {
	repo ports.UserRepository
}

func NewContactService(repo ports.UserRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) Get(ctx context.Context, userID string) (*domain.Contact, error) {
	return s.repo.FindContact(ctx, userID)
}

// Update replaces the contact block and returns its public view.
func (s *ContactService) Update(ctx context.Context, userID string, c domain.Contact) (*domain.Contact, error) {
	c.Location = strings.TrimSpace(c.Location)
	c.PersonalEmail = NormalizeEmail(c.PersonalEmail)
	c.FromEmail = NormalizeEmail(c.FromEmail)
	c.SendGridAPIKey = strings.TrimSpace(c.SendGridAPIKey)

	if c.Location == "" || c.PersonalEmail == "" || c.FromEmail == "" {
		return nil, fmt.Errorf("%w: location, personal email and from email are required", domain.ErrValidation)
	}

	if err := s.repo.UpdateContact(ctx, userID, c); err != nil {
		return nil, err
	}
	return s.repo.FindContact(ctx, userID)
}
