package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
	"github.com/aussiebroadwan/cashbook/internal/membership/roster"
	"github.com/aussiebroadwan/cashbook/internal/membership/store"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

// businessSnapshot is the business plus its aggregated roster, loaded from a
// single store view.
type businessSnapshot struct {
	Input  roster.Input
	Result roster.Result
}

func (s businessSnapshot) Business() domain.Business { return s.Input.Business }

// loadBusiness reads every fact the aggregator needs and runs it. Missing
// users are logged as data consistency problems and skipped.
func loadBusiness(ctx context.Context, st store.Store, businessID string) (businessSnapshot, error) {
	log := slogx.FromContext(ctx).With(slog.String("business_id", businessID))

	// 1. Business
	business, err := st.Businesses().GetBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return businessSnapshot{}, ErrBusinessNotFound
		}
		log.Error("failed to fetch business", slog.Any("error", err))
		return businessSnapshot{}, err
	}

	// 2. Cashbooks and their members
	cashbooks, err := st.Cashbooks().ListCashbooksByBusiness(ctx, businessID)
	if err != nil {
		log.Error("failed to list cashbooks", slog.Any("error", err))
		return businessSnapshot{}, err
	}

	memberships, err := st.CashbookMembers().ListMembersByBusiness(ctx, businessID)
	if err != nil {
		log.Error("failed to list cashbook members", slog.Any("error", err))
		return businessSnapshot{}, err
	}

	businessMembers, err := st.BusinessMembers().ListBusinessMembers(ctx, businessID)
	if err != nil {
		log.Error("failed to list business members", slog.Any("error", err))
		return businessSnapshot{}, err
	}

	in := roster.Input{
		Business:          business,
		Cashbooks:         cashbooks,
		MembersByCashbook: make(map[string][]string, len(cashbooks)),
		BusinessMembers:   businessMembers,
	}
	for _, m := range memberships {
		in.MembersByCashbook[m.CashbookID] = append(in.MembersByCashbook[m.CashbookID], m.UserID)
	}

	// 3. Users referenced anywhere above
	ids := roster.NewIDSet(business.OwnerID)
	for _, cb := range cashbooks {
		ids.Add(cb.OwnerID)
	}
	for _, m := range memberships {
		ids.Add(m.UserID)
	}
	for _, bm := range businessMembers {
		ids.Add(bm.UserID)
	}

	users, err := st.Users().ListUsersByIDs(ctx, ids.Sorted())
	if err != nil {
		log.Error("failed to list users", slog.Any("error", err))
		return businessSnapshot{}, err
	}
	in.Users = make(map[string]domain.User, len(users))
	for _, u := range users {
		in.Users[u.ID] = u
	}

	// 4. Aggregate
	res := roster.Aggregate(in)
	for _, id := range res.Dropped {
		log.Warn("dropping roster entry",
			slog.String("user_id", id),
			slog.Any("error", ErrDataConsistency),
		)
	}

	return businessSnapshot{Input: in, Result: res}, nil
}

// cashbook returns the business's cashbook with the given id.
func (s businessSnapshot) cashbook(id string) (domain.Cashbook, bool) {
	for _, cb := range s.Input.Cashbooks {
		if cb.ID == id {
			return cb, true
		}
	}
	return domain.Cashbook{}, false
}

// role returns the user's role in the business.
func (s businessSnapshot) role(userID string) (domain.Role, bool) {
	e, ok := roster.Find(s.Result.Roster, userID)
	if !ok {
		return "", false
	}
	return e.Role, true
}
