package domain

// Contact is the owner's contact block. PersonalEmail, FromEmail and
// SendGridAPIKey are write-only: ordinary reads leave them empty.
type Contact struct {
	Location       string `json:"location"`
	PersonalEmail  string `json:"personalEmail,omitempty"`
	FromEmail      string `json:"fromEmail,omitempty"`
	SendGridAPIKey string `json:"-"`
}
