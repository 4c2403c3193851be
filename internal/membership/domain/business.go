package domain

import "time"

// Business groups cashbooks under exactly one owner. The owner never changes.
type Business struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
}

// BusinessMembership is a business-level association created by a direct add
// or a Partner invite. The business owner never has one.
type BusinessMembership struct {
	BusinessID string
	UserID     string
	Role       Role // RolePartner or RoleStaff
	AddedAt    time.Time
}
