package domain

import "time"

// User is the single account that owns a portfolio. Secret material never
// leaves the process through JSON.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	APIKey       string    `json:"-"`
	RSAKeys      *RSAKeys  `json:"-"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RSAKeys is the user's PEM-encoded key pair used for the API-key exchange.
// PrivateKey is only populated by reads that explicitly ask for secrets.
type RSAKeys struct {
	PublicKey  string
	PrivateKey string
}

// HasKeyPair reports whether a public key has been provisioned.
func (u *User) HasKeyPair() bool {
	return u.RSAKeys != nil && u.RSAKeys.PublicKey != ""
}

// Interests groups the tag lists shown on the public site.
type Interests struct {
	BusinessDomain      []string `json:"businessDomain"`
	ProgrammingLanguage []string `json:"programmingLanguage"`
	Framework           []string `json:"framework"`
}

// SEO holds search-engine metadata for the public site.
type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Profile is the editable, non-credential part of a user record.
type Profile struct {
	About     string    `json:"about"`
	Status    string    `json:"status"`
	Interests Interests `json:"interests"`
	SEO       SEO       `json:"seo"`
}
