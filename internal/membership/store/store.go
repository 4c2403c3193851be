package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so a transaction-scoped Store offers exactly the
// same surface as the root one.
type Store interface {
	Users() Users
	Businesses() Businesses
	Cashbooks() Cashbooks
	CashbookMembers() CashbookMembers
	BusinessMembers() BusinessMembers
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction. It commits when fn returns nil and
	// rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// UpsertUser inserts the user or refreshes its profile fields.
	UpsertUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// ListUsersByIDs returns the users that exist among ids. Missing ids are
	// silently absent from the result.
	ListUsersByIDs(ctx context.Context, ids []string) ([]domain.User, error)

	// FindUserByEmail matches on the lowercased email.
	FindUserByEmail(ctx context.Context, email string) (domain.User, error)
	FindUserByPhone(ctx context.Context, phone string) (domain.User, error)
}

type Businesses interface {
	CreateBusiness(ctx context.Context, b domain.Business) error
	GetBusinessByID(ctx context.Context, id string) (domain.Business, error)

	// ListBusinessIDsByOwner returns every business owned by ownerID.
	ListBusinessIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
}

type Cashbooks interface {
	CreateCashbook(ctx context.Context, c domain.Cashbook) error
	GetCashbookByID(ctx context.Context, id string) (domain.Cashbook, error)
	ListCashbooksByBusiness(ctx context.Context, businessID string) ([]domain.Cashbook, error)
}

type CashbookMembers interface {
	// AddCashbookMember returns ErrAlreadyExists when the pair is present.
	AddCashbookMember(ctx context.Context, m domain.CashbookMembership) error

	// RemoveCashbookMember returns ErrNotFound when no row was deleted.
	RemoveCashbookMember(ctx context.Context, cashbookID, userID string) error

	ListCashbookMembers(ctx context.Context, cashbookID string) ([]domain.CashbookMembership, error)

	// ListMembersByBusiness returns every cashbook membership in the
	// business's cashbooks.
	ListMembersByBusiness(ctx context.Context, businessID string) ([]domain.CashbookMembership, error)

	// RemoveUserFromBusinessCashbooks deletes every membership the user holds
	// in the business's cashbooks and returns how many rows went.
	RemoveUserFromBusinessCashbooks(ctx context.Context, businessID, userID string) (int64, error)
}

type BusinessMembers interface {
	// AddBusinessMember returns ErrAlreadyExists when the user already has a
	// business-level row.
	AddBusinessMember(ctx context.Context, m domain.BusinessMembership) error

	// PromoteToPartner inserts a Partner row or upgrades an existing Staff row.
	PromoteToPartner(ctx context.Context, businessID, userID string, at time.Time) error

	GetBusinessMember(ctx context.Context, businessID, userID string) (domain.BusinessMembership, error)
	ListBusinessMembers(ctx context.Context, businessID string) ([]domain.BusinessMembership, error)

	// RemoveBusinessMember reports whether a row was deleted.
	RemoveBusinessMember(ctx context.Context, businessID, userID string) (bool, error)
}

// InviteFilter narrows ListInvites. A zero Status matches every status.
type InviteFilter struct {
	BusinessID string
	Status     domain.InviteStatus
}

type Invites interface {
	CreateInvite(ctx context.Context, inv domain.Invite) error
	GetInviteByID(ctx context.Context, id string) (domain.Invite, error)

	// GetInviteByTokenHash looks up an invite by token fingerprint regardless
	// of status.
	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// ListInvites returns matching invites, newest first.
	ListInvites(ctx context.Context, f InviteFilter) ([]domain.Invite, error)

	// TransitionInvite is a compare-and-set from one status to another. It
	// returns false when the invite was not in status from.
	TransitionInvite(ctx context.Context, id string, from, to domain.InviteStatus, at time.Time) (bool, error)

	// AcceptInvite moves a pending invite to accepted and records the
	// acceptor. It returns false when the invite was no longer pending.
	AcceptInvite(ctx context.Context, id, userID string, at time.Time) (bool, error)
}
