package domain

import "time"

// Cashbook is a ledger. Its owner may differ from the business owner, in which
// case that user is a Partner of the business.
type Cashbook struct {
	ID         string
	Name       string
	OwnerID    string
	BusinessID string // empty for personal cashbooks
	CreatedAt  time.Time
}

// InBusiness reports whether the cashbook belongs to businessID.
func (c Cashbook) InBusiness(businessID string) bool {
	return c.BusinessID != "" && c.BusinessID == businessID
}

// CashbookMembership is a Staff-level association. The cashbook owner is never
// stored as a membership.
type CashbookMembership struct {
	CashbookID string
	UserID     string
	AddedAt    time.Time
}
