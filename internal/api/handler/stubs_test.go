package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
	"github.com/DhairyaPatel2210/portfolio/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, in ports.SignupInput, originHost string) (*ports.AuthResult, error)
	loginFn  func(ctx context.Context, email, password, originHost string) (*ports.AuthResult, error)
	apiKeyFn func(ctx context.Context, email, encryptedKey, originHost string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput, originHost string) (*ports.AuthResult, error) {
	return s.signupFn(ctx, in, originHost)
}

func (s *stubAuthService) Login(ctx context.Context, email, password, originHost string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password, originHost)
}

func (s *stubAuthService) AuthenticateWithAPIKey(ctx context.Context, email, encryptedKey, originHost string) (*ports.AuthResult, error) {
	return s.apiKeyFn(ctx, email, encryptedKey, originHost)
}

type stubCredentialService struct {
	publicKey   string
	apiKey      string
	regenerated int
	err         error
	lastUserID  string
}

func (s *stubCredentialService) PublicKey(_ context.Context, userID string) (string, error) {
	s.lastUserID = userID
	return s.publicKey, s.err
}

func (s *stubCredentialService) RegeneratePublicKey(_ context.Context, userID string) (string, error) {
	s.lastUserID = userID
	s.regenerated++
	s.publicKey = "-----BEGIN PUBLIC KEY-----\nnew\n-----END PUBLIC KEY-----\n"
	return s.publicKey, s.err
}

func (s *stubCredentialService) APIKey(_ context.Context, userID string) (string, error) {
	s.lastUserID = userID
	return s.apiKey, s.err
}

func (s *stubCredentialService) RegenerateAPIKey(_ context.Context, userID string) (string, error) {
	s.lastUserID = userID
	s.regenerated++
	s.apiKey = "fresh-key"
	return s.apiKey, s.err
}

type stubOriginService struct {
	origins []*domain.Origin
	values  []string
	err     error
	removed []string
	addedBy string
}

func (s *stubOriginService) List(_ context.Context, userID string) ([]*domain.Origin, error) {
	var out []*domain.Origin
	for _, o := range s.origins {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, s.err
}

func (s *stubOriginService) ListAll(context.Context) ([]string, error) {
	return s.values, s.err
}

func (s *stubOriginService) Add(_ context.Context, userID, origin, description string) (*domain.Origin, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.addedBy = userID
	o := &domain.Origin{ID: "o-new", Value: origin, Description: description, UserID: userID}
	s.origins = append(s.origins, o)
	return o, nil
}

func (s *stubOriginService) Remove(_ context.Context, userID, id string) error {
	if s.err != nil {
		return s.err
	}
	for _, o := range s.origins {
		if o.ID == id && o.UserID == userID {
			s.removed = append(s.removed, id)
			return nil
		}
	}
	return domain.ErrOriginNotFound
}

func (s *stubOriginService) IsAllowed(context.Context, string) (bool, error) {
	return false, nil
}

type stubProfileService struct {
	user    *domain.User
	updated domain.Profile
	err     error
}

func (s *stubProfileService) Get(_ context.Context, userID string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user == nil || s.user.ID != userID {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubProfileService) Update(_ context.Context, userID string, p domain.Profile) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updated = p
	u := *s.user
	u.Profile = p
	return &u, nil
}

type stubContactService struct {
	stored domain.Contact
	err    error
}

func (s *stubContactService) Get(_ context.Context, userID string) (*domain.Contact, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Contact{Location: s.stored.Location}, nil
}

func (s *stubContactService) Update(ctx context.Context, userID string, c domain.Contact) (*domain.Contact, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.stored = c
	return s.Get(ctx, userID)
}

// newContext builds an echo context with the validator installed, an
// optional JSON body and an optional authenticated identity.
func newContext(method, target, body string, id *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if id != nil {
		req = req.WithContext(domain.WithIdentity(req.Context(), *id))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
