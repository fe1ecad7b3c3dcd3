package domain

import "strings"

// UserSummary is the public card of a platform user.
type UserSummary struct {
	ID        string  `json:"_id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Image     *string `json:"image,omitempty"`
	Location  *string `json:"location,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// DisplayName joins first and last name, tolerating either being empty.
func (u UserSummary) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// CompanySummary is the public card of a company account.
type CompanySummary struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}

// Session identifies the authenticated user that owns a set of stores.
// Every store operation acts on behalf of exactly one Session.
type Session struct {
	UserID string
	Token  string
}
