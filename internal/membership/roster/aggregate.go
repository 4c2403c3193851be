package roster

import "github.com/aussiebroadwan/cashbook/internal/membership/domain"

// Input is everything Aggregate needs to know about one business.
type Input struct {
	Business  domain.Business
	Cashbooks []domain.Cashbook

	// MembersByCashbook maps cashbook id to the user ids holding a
	// CashbookMembership on it.
	MembersByCashbook map[string][]string

	// BusinessMembers are the business-level associations.
	BusinessMembers []domain.BusinessMembership

	// Users resolves ids to accounts. Ids missing here are dropped.
	Users map[string]domain.User
}

// Result is a roster plus the ids that could not be resolved to a user.
type Result struct {
	Roster  []domain.RosterEntry
	Dropped []string
}

// Partition splits the business's people into partners and staff members.
// Partners are cashbook owners other than the business owner plus
// business-level Partners. Members are everyone else attached to a
// cashbook or at Staff level, minus partners and the owner.
func Partition(in Input) (partnerIDs, memberIDs IDSet) {
	ownerID := in.Business.OwnerID
	partnerIDs = NewIDSet()
	memberIDs = NewIDSet()

	for _, cb := range in.Cashbooks {
		if !cb.InBusiness(in.Business.ID) {
			continue
		}
		if cb.OwnerID != ownerID {
			partnerIDs.Add(cb.OwnerID)
		}
	}
	for _, bm := range in.BusinessMembers {
		if bm.UserID != ownerID && bm.Role == domain.RolePartner {
			partnerIDs.Add(bm.UserID)
		}
	}

	addMember := func(id string) {
		if id == ownerID || partnerIDs.Has(id) {
			return
		}
		memberIDs.Add(id)
	}
	for _, cb := range in.Cashbooks {
		if !cb.InBusiness(in.Business.ID) {
			continue
		}
		for _, id := range in.MembersByCashbook[cb.ID] {
			addMember(id)
		}
	}
	for _, bm := range in.BusinessMembers {
		if bm.Role == domain.RoleStaff {
			addMember(bm.UserID)
		}
	}

	return partnerIDs, memberIDs
}

// Aggregate builds the roster of a business: one entry per person holding a
// role, each annotated with the cashbooks they own or belong to. Candidates
// whose user record is missing are reported in Dropped and skipped.
func Aggregate(in Input) Result {
	ownerID := in.Business.OwnerID
	partnerIDs, memberIDs := Partition(in)

	candidates := make([]string, 0, 1+len(partnerIDs)+len(memberIDs))
	candidates = append(candidates, ownerID)
	candidates = append(candidates, partnerIDs.Sorted()...)
	candidates = append(candidates, memberIDs.Sorted()...)

	access := cashbookAccess(in)

	var res Result
	for _, id := range candidates {
		user, ok := in.Users[id]
		if !ok {
			res.Dropped = append(res.Dropped, id)
			continue
		}

		role, ok := Classify(id, ownerID, partnerIDs, memberIDs)
		if !ok {
			continue
		}

		res.Roster = append(res.Roster, domain.RosterEntry{
			User:      user,
			Role:      role,
			Cashbooks: access[id],
		})
	}

	return res
}

func cashbookAccess(in Input) map[string][]domain.CashbookAccess {
	out := make(map[string][]domain.CashbookAccess)
	for _, cb := range in.Cashbooks {
		if !cb.InBusiness(in.Business.ID) {
			continue
		}
		out[cb.OwnerID] = append(out[cb.OwnerID], domain.CashbookAccess{
			CashbookID:   cb.ID,
			CashbookName: cb.Name,
			Relation:     domain.RelationOwner,
		})

		seen := NewIDSet(cb.OwnerID)
		for _, id := range in.MembersByCashbook[cb.ID] {
			if seen.Has(id) {
				continue
			}
			seen.Add(id)
			out[id] = append(out[id], domain.CashbookAccess{
				CashbookID:   cb.ID,
				CashbookName: cb.Name,
				Relation:     domain.RelationMember,
			})
		}
	}
	return out
}
