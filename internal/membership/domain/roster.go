package domain

// CashbookRelation says how a roster member relates to one cashbook.
type CashbookRelation string

const (
	RelationOwner  CashbookRelation = "owner"
	RelationMember CashbookRelation = "member"
)

// CashbookAccess annotates a roster entry with one cashbook it can reach.
type CashbookAccess struct {
	CashbookID   string
	CashbookName string
	Relation     CashbookRelation
}

// RosterEntry is one classified member of a business. A roster holds at most
// one entry per user.
type RosterEntry struct {
	User      User
	Role      Role
	Cashbooks []CashbookAccess
}
