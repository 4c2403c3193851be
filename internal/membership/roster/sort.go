package roster

import (
	"cmp"
	"slices"
	"strings"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
)

// SortForDisplay orders a roster for the console: the viewing user first,
// then by role precedence, then by label, then by id.
func SortForDisplay(entries []domain.RosterEntry, currentUserID string) {
	slices.SortStableFunc(entries, func(a, b domain.RosterEntry) int {
		aMe, bMe := a.User.ID == currentUserID, b.User.ID == currentUserID
		switch {
		case aMe && !bMe:
			return -1
		case bMe && !aMe:
			return 1
		}

		if c := cmp.Compare(a.Role.Rank(), b.Role.Rank()); c != 0 {
			return c
		}
		if c := strings.Compare(strings.ToLower(a.User.Label()), strings.ToLower(b.User.Label())); c != 0 {
			return c
		}
		return strings.Compare(a.User.ID, b.User.ID)
	})
}

// Find returns the roster entry for userID.
func Find(entries []domain.RosterEntry, userID string) (domain.RosterEntry, bool) {
	for _, e := range entries {
		if e.User.ID == userID {
			return e, true
		}
	}
	return domain.RosterEntry{}, false
}
