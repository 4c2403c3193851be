package domain

import (
	"errors"
	"strings"
)

// Role is derived from ownership and membership facts, never stored for the
// business owner.
type Role string

const (
	RoleOwner   Role = "owner"
	RolePartner Role = "partner"
	RoleStaff   Role = "staff"
)

var ErrUnknownRole = errors.New("domain: unknown role")

// Rank orders roles by precedence: Owner > Partner > Staff. Unknown roles rank last.
func (r Role) Rank() int {
	switch r {
	case RoleOwner:
		return 0
	case RolePartner:
		return 1
	case RoleStaff:
		return 2
	default:
		return 3
	}
}

func (r Role) String() string { return string(r) }

// Assignable reports whether the role can be granted by invite or direct add.
// Ownership is never granted.
func (r Role) Assignable() bool {
	return r == RolePartner || r == RoleStaff
}

// ParseAssignableRole parses an invite or add-member role.
func ParseAssignableRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Assignable() {
		return "", ErrUnknownRole
	}
	return r, nil
}
