package domain

import "time"

// User is a platform account, replicated from the auth service's token claims.
// This service never edits identity fields, it only mirrors them.
type User struct {
	ID          string
	Email       string // lowercase, may be empty
	Phone       string // E.164, may be empty
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label is what a roster shows for the user.
func (u User) Label() string {
	switch {
	case u.DisplayName != "":
		return u.DisplayName
	case u.Email != "":
		return u.Email
	case u.Phone != "":
		return u.Phone
	default:
		return u.ID
	}
}
