package roster

import "github.com/aussiebroadwan/cashbook/internal/membership/domain"

// Classify derives a user's role in a business. Precedence is
// Owner > Partner > Staff; ok is false when the user holds no role.
func Classify(userID, businessOwnerID string, partnerIDs, memberIDs IDSet) (domain.Role, bool) {
	switch {
	case userID == "":
		return "", false
	case userID == businessOwnerID:
		return domain.RoleOwner, true
	case partnerIDs.Has(userID):
		return domain.RolePartner, true
	case memberIDs.Has(userID):
		return domain.RoleStaff, true
	default:
		return "", false
	}
}
