package ports

import (
	"context"

	"github.com/DhairyaPatel2210/portfolio/internal/core/domain"
)

// SignupInput carries the fields accepted by POST /users/signup.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthResult is returned by every token-issuing operation.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService issues session tokens. originHost is the hostname the token
// gets bound to.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput, originHost string) (*AuthResult, error)
	Login(ctx context.Context, email, password, originHost string) (*AuthResult, error)
	AuthenticateWithAPIKey(ctx context.Context, email, encryptedKey, originHost string) (*AuthResult, error)
}
