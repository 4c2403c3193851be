package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
	"github.com/aussiebroadwan/cashbook/internal/membership/roster"
	"github.com/aussiebroadwan/cashbook/internal/membership/store"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

type RosterService struct {
	Store store.Store
}

// Roster is a business and its classified members.
type Roster struct {
	Business domain.Business
	Entries  []domain.RosterEntry
}

// GetRoster returns the business's roster sorted for viewerID.
func (s *RosterService) GetRoster(ctx context.Context, businessID, viewerID string) (Roster, error) {
	snap, err := loadBusiness(ctx, s.Store, businessID)
	if err != nil {
		return Roster{}, err
	}

	entries := slices.Clone(snap.Result.Roster)
	roster.SortForDisplay(entries, viewerID)

	return Roster{Business: snap.Business(), Entries: entries}, nil
}

// AvailableForCashbook returns the business's Staff who can still be added
// to the cashbook.
func (s *RosterService) AvailableForCashbook(ctx context.Context, businessID, cashbookID string) ([]domain.User, error) {
	snap, err := loadBusiness(ctx, s.Store, businessID)
	if err != nil {
		return nil, err
	}

	cb, ok := snap.cashbook(cashbookID)
	if !ok {
		return nil, ErrCashbookNotFound
	}

	ids := roster.AvailableForCashbook(
		cb,
		snap.Business().OwnerID,
		snap.Input.MembersByCashbook[cb.ID],
		roster.StaffIDs(snap.Result.Roster),
	)

	users := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, snap.Input.Users[id])
	}
	return users, nil
}

// AvailableForBusiness returns Staff from the owner's other businesses who
// are not yet part of this one.
func (s *RosterService) AvailableForBusiness(ctx context.Context, businessID string) ([]domain.User, error) {
	log := slogx.FromContext(ctx)

	snap, err := loadBusiness(ctx, s.Store, businessID)
	if err != nil {
		return nil, err
	}

	owned, err := s.Store.Businesses().ListBusinessIDsByOwner(ctx, snap.Business().OwnerID)
	if err != nil {
		log.Error("failed to list owner businesses", slog.Any("error", err))
		return nil, err
	}
	others := slices.DeleteFunc(owned, func(id string) bool { return id == businessID })

	// The pool is whoever classifies as Staff in another business. A Partner
	// there is not Staff even if they also hold a cashbook membership.
	pool := roster.NewIDSet()
	for _, id := range others {
		other, err := loadBusiness(ctx, s.Store, id)
		if err != nil {
			log.Error("failed to load owner business", slog.String("business_id", id), slog.Any("error", err))
			return nil, err
		}
		for _, staffID := range roster.StaffIDs(other.Result.Roster) {
			pool.Add(staffID)
		}
	}

	ids := roster.AvailableForBusiness(snap.Result.Roster, pool.Sorted())
	users, err := s.Store.Users().ListUsersByIDs(ctx, ids)
	if err != nil {
		log.Error("failed to list users", slog.Any("error", err))
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
