package http

import (
	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
	"github.com/aussiebroadwan/cashbook/pkg/cashbooksdk"
)

func toUser(u domain.User) cashbooksdk.User {
	return cashbooksdk.User{
		ID:          u.ID,
		Email:       u.Email,
		Phone:       u.Phone,
		DisplayName: u.DisplayName,
	}
}

func toUsers(users []domain.User) []cashbooksdk.User {
	out := make([]cashbooksdk.User, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	return out
}

func toBusiness(b domain.Business) cashbooksdk.Business {
	return cashbooksdk.Business{
		ID:        b.ID,
		Name:      b.Name,
		OwnerID:   b.OwnerID,
		CreatedAt: b.CreatedAt.Unix(),
	}
}

func toCashbook(cb domain.Cashbook) cashbooksdk.Cashbook {
	return cashbooksdk.Cashbook{
		ID:         cb.ID,
		Name:       cb.Name,
		OwnerID:    cb.OwnerID,
		BusinessID: cb.BusinessID,
		CreatedAt:  cb.CreatedAt.Unix(),
	}
}

func toRosterEntries(entries []domain.RosterEntry) []cashbooksdk.RosterEntry {
	out := make([]cashbooksdk.RosterEntry, 0, len(entries))
	for _, e := range entries {
		access := make([]cashbooksdk.CashbookAccess, 0, len(e.Cashbooks))
		for _, a := range e.Cashbooks {
			access = append(access, cashbooksdk.CashbookAccess{
				CashbookID:   a.CashbookID,
				CashbookName: a.CashbookName,
				Relation:     string(a.Relation),
			})
		}
		out = append(out, cashbooksdk.RosterEntry{
			User:      toUser(e.User),
			Role:      e.Role.String(),
			Cashbooks: access,
		})
	}
	return out
}

func toInvite(inv domain.Invite) cashbooksdk.Invite {
	out := cashbooksdk.Invite{
		ID:         inv.ID,
		BusinessID: inv.BusinessID,
		Email:      inv.Email,
		Phone:      inv.Phone,
		Role:       inv.Role.String(),
		CashbookID: inv.CashbookID,
		Status:     string(inv.Status),
		InvitedBy:  inv.InvitedBy,
		CreatedAt:  inv.CreatedAt.Unix(),
		ExpiresAt:  inv.ExpiresAt.Unix(),
		AcceptedBy: inv.AcceptedBy,
	}
	if inv.AcceptedAt != nil {
		out.AcceptedAt = inv.AcceptedAt.Unix()
	}
	return out
}

func toInvites(invites []domain.Invite) []cashbooksdk.Invite {
	out := make([]cashbooksdk.Invite, 0, len(invites))
	for _, inv := range invites {
		out = append(out, toInvite(inv))
	}
	return out
}

func toCashbookMembership(m domain.CashbookMembership) cashbooksdk.MembershipResponse {
	return cashbooksdk.MembershipResponse{
		UserID:     m.UserID,
		CashbookID: m.CashbookID,
		Role:       domain.RoleStaff.String(),
		AddedAt:    m.AddedAt.Unix(),
	}
}

func toBusinessMembership(m domain.BusinessMembership) cashbooksdk.MembershipResponse {
	return cashbooksdk.MembershipResponse{
		UserID:     m.UserID,
		BusinessID: m.BusinessID,
		Role:       m.Role.String(),
		AddedAt:    m.AddedAt.Unix(),
	}
}
