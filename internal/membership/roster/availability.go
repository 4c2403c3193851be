package roster

import "github.com/aussiebroadwan/cashbook/internal/membership/domain"

// AvailableForCashbook returns the pool entries that can be added to cb:
// anyone not already a member, not the cashbook owner and not the business
// owner. The result is sorted and free of duplicates; an empty pool yields
// an empty result.
func AvailableForCashbook(cb domain.Cashbook, businessOwnerID string, currentMembers, pool []string) []string {
	exclude := NewIDSet(currentMembers...)
	exclude.Add(cb.OwnerID)
	exclude.Add(businessOwnerID)

	return subtract(pool, exclude)
}

// AvailableForBusiness returns the pool entries not already on the roster.
func AvailableForBusiness(roster []domain.RosterEntry, pool []string) []string {
	exclude := NewIDSet()
	for _, e := range roster {
		exclude.Add(e.User.ID)
	}

	return subtract(pool, exclude)
}

// StaffIDs returns the ids of roster entries classified as Staff.
func StaffIDs(roster []domain.RosterEntry) []string {
	var out []string
	for _, e := range roster {
		if e.Role == domain.RoleStaff {
			out = append(out, e.User.ID)
		}
	}
	return out
}

func subtract(pool []string, exclude IDSet) []string {
	keep := NewIDSet()
	for _, id := range pool {
		if !exclude.Has(id) {
			keep.Add(id)
		}
	}
	return keep.Sorted()
}
