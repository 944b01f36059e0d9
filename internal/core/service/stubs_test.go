package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

type stubUserRepo struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	contacts map[string]domain.Contact
	nextID   int

	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), contacts: make(map[string]domain.Contact)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.RSAKeys != nil {
		keys := *u.RSAKeys
		clone.RSAKeys = &keys
	}
	return &clone
}

// public mirrors the default projection of the real store.
func public(u *domain.User) *domain.User {
	c := cloneUser(u)
	c.APIKey = ""
	if c.RSAKeys != nil {
		c.RSAKeys.PrivateKey = ""
	}
	return c
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return public(u), nil
}

func (r *stubUserRepo) byEmail(email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.byEmail(email)
	if err != nil {
		return nil, err
	}
	return public(u), nil
}

func (r *stubUserRepo) FindByEmailWithSecrets(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, err := r.byEmail(email)
	if err != nil {
		return nil, err
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindAPIKey(_ context.Context, id string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return u.APIKey, nil
}

func (r *stubUserRepo) SetAPIKey(_ context.Context, id, apiKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.APIKey = apiKey
	return nil
}

func (r *stubUserRepo) SetRSAKeys(_ context.Context, id string, keys domain.RSAKeys) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RSAKeys = &keys
	return nil
}

func (r *stubUserRepo) SetRSAKeysIfAbsent(_ context.Context, id string, keys domain.RSAKeys) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.HasKeyPair() {
		return false, nil
	}
	u.RSAKeys = &keys
	return true, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, p domain.Profile) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Profile = p
	return public(u), nil
}

func (r *stubUserRepo) FindContact(_ context.Context, id string) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return nil, domain.ErrUserNotFound
	}
	c := r.contacts[id]
	return &domain.Contact{Location: c.Location}, nil
}

func (r *stubUserRepo) UpdateContact(_ context.Context, id string, c domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	if c.SendGridAPIKey == "" {
		c.SendGridAPIKey = r.contacts[id].SendGridAPIKey
	}
	r.contacts[id] = c
	return nil
}

type stubOriginRepo struct {
	origins []*domain.Origin
	listErr error
}

func (r *stubOriginRepo) Create(_ context.Context, o *domain.Origin) (*domain.Origin, error) {
	for _, existing := range r.origins {
		if existing.Value == o.Value && existing.UserID == o.UserID {
			return nil, domain.ErrOriginExists
		}
	}
	c := *o
	c.ID = fmt.Sprintf("origin-%d", len(r.origins)+1)
	r.origins = append(r.origins, &c)
	out := c
	return &out, nil
}

func (r *stubOriginRepo) ListByUser(_ context.Context, userID string) ([]*domain.Origin, error) {
	out := []*domain.Origin{}
	for _, o := range r.origins {
		if o.UserID == userID {
			c := *o
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *stubOriginRepo) ListValues(_ context.Context) ([]string, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, o := range r.origins {
		if _, ok := seen[o.Value]; ok {
			continue
		}
		seen[o.Value] = struct{}{}
		out = append(out, o.Value)
	}
	return out, nil
}

func (r *stubOriginRepo) DeleteForUser(_ context.Context, id, userID string) error {
	for i, o := range r.origins {
		if o.ID == id && o.UserID == userID {
			r.origins = append(r.origins[:i], r.origins[i+1:]...)
			return nil
		}
	}
	return domain.ErrOriginNotFound
}
