package handler

import "github.com/DhairyaPatel2210/portfolio/internal/core/domain"

// errorResponse documents the error envelope rendered by the central error
// handler.
type errorResponse struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Users ---

type signupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required"`
}

// Credential requests only check presence; a malformed email must fail
// like any other wrong credential.
type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type apiKeyAuthRequest struct {
	Email        string `json:"email"        validate:"required"`
	EncryptedKey string `json:"encryptedKey" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type checkAuthResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// --- Credentials ---

type publicKeyResponse struct {
	PublicKey string `json:"publicKey"`
}

type apiKeyResponse struct {
	APIKey string `json:"apiKey"`
}

// --- Origins ---

type addOriginRequest struct {
	Origin      string `json:"origin"      validate:"required,url,max=253"`
	Description string `json:"description" validate:"max=500"`
}

// --- Profile ---

type interestsRequest struct {
	BusinessDomain      []string `json:"businessDomain"`
	ProgrammingLanguage []string `json:"programmingLanguage"`
	Framework           []string `json:"framework"`
}

type seoRequest struct {
	Title       string   `json:"title"       validate:"max=200"`
	Description string   `json:"description" validate:"max=1000"`
	Keywords    []string `json:"keywords"`
}

type updateProfileRequest struct {
	About     string           `json:"about"  validate:"max=5000"`
	Status    string           `json:"status" validate:"max=200"`
	Interests interestsRequest `json:"interests"`
	SEO       seoRequest       `json:"seo"`
}

func (r updateProfileRequest) toDomain() domain.Profile {
	return domain.Profile{
		About:  r.About,
		Status: r.Status,
		Interests: domain.Interests{
			BusinessDomain:      r.Interests.BusinessDomain,
			ProgrammingLanguage: r.Interests.ProgrammingLanguage,
			Framework:           r.Interests.Framework,
		},
		SEO: domain.SEO{
			Title:       r.SEO.Title,
			Description: r.SEO.Description,
			Keywords:    r.SEO.Keywords,
		},
	}
}

// --- Contact ---

type contactRequest struct {
	Location       string `json:"location"       validate:"required,max=200"`
	PersonalEmail  string `json:"personalEmail"  validate:"required,email"`
	FromEmail      string `json:"fromEmail"      validate:"required,email"`
	SendGridAPIKey string `json:"sendGridApiKey" validate:"max=200"`
}

type updateContactRequest struct {
	Contact contactRequest `json:"contact"`
}

func (r updateContactRequest) toDomain() domain.Contact {
	return domain.Contact{
		Location:       r.Contact.Location,
		PersonalEmail:  r.Contact.PersonalEmail,
		FromEmail:      r.Contact.FromEmail,
		SendGridAPIKey: r.Contact.SendGridAPIKey,
	}
}

type contactResponse struct {
	Message string          `json:"message,omitempty"`
	Contact *domain.Contact `json:"contact"`
}
