package service

import (
	"errors"
	"fmt"
)

// Validation errors. The caller sent something unusable; retrying the same
// input will fail the same way.
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidTarget    = errors.New("invite target must be exactly one valid email address or phone number")
	ErrInvalidRole      = errors.New("role must be partner or staff")
	ErrCashbookRequired = errors.New("staff invites require a cashbook belonging to the business")
)

// State conflicts. Surfaced as-is; the caller refreshes and decides.
var (
	ErrNotPending      = errors.New("invite is no longer pending")
	ErrExpired         = errors.New("invite has expired")
	ErrInvalidToken    = errors.New("invite token is invalid")
	ErrAlreadyResolved = errors.New("invite has already been resolved")
	ErrAlreadyMember   = errors.New("user is already a member")
	ErrNotMember       = errors.New("user is not a member")
	ErrIsOwner         = errors.New("user is an owner")
)

var (
	ErrNotFound         = errors.New("not found")
	ErrBusinessNotFound = fmt.Errorf("business %w", ErrNotFound)
	ErrCashbookNotFound = fmt.Errorf("cashbook %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrInviteNotFound   = fmt.Errorf("invite %w", ErrNotFound)
)

var (
	// ErrDataConsistency marks a roster id with no backing user. It is
	// logged and the entry dropped, never returned.
	ErrDataConsistency = errors.New("membership references a missing user")

	ErrForbidden          = errors.New("caller may not perform this action")
	ErrNotificationFailed = errors.New("invite notification could not be delivered")
)
