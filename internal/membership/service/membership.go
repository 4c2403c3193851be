package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
	"github.com/aussiebroadwan/cashbook/internal/membership/store"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

type MembershipService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *MembershipService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// AddToCashbook grants userID Staff access to one cashbook.
func (s *MembershipService) AddToCashbook(ctx context.Context, cashbookID, userID string) (domain.CashbookMembership, error) {
	var m domain.CashbookMembership
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		m, err = addToCashbook(ctx, tx, cashbookID, userID, s.now())
		return err
	})
	if err != nil {
		return domain.CashbookMembership{}, err
	}

	slogx.FromContext(ctx).Info("cashbook member added",
		slog.String("cashbook_id", cashbookID),
		slog.String("user_id", userID),
	)
	return m, nil
}

// RemoveFromCashbook deletes userID's membership. Owners cannot be removed.
func (s *MembershipService) RemoveFromCashbook(ctx context.Context, cashbookID, userID string) error {
	log := slogx.FromContext(ctx).With(
		slog.String("cashbook_id", cashbookID),
		slog.String("user_id", userID),
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. The owner's access is implicit and cannot be removed here.
		cb, err := getCashbook(ctx, tx, cashbookID)
		if err != nil {
			return err
		}
		if cb.OwnerID == userID {
			log.Warn("attempted to remove cashbook owner")
			return ErrIsOwner
		}

		// 2. Delete the row.
		if err := tx.CashbookMembers().RemoveCashbookMember(ctx, cashbookID, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotMember
			}
			log.Error("failed to remove cashbook member", slog.Any("error", err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("cashbook member removed")
	return nil
}

// AddToBusiness records a business-level Partner or Staff association.
func (s *MembershipService) AddToBusiness(ctx context.Context, businessID, userID, role string) (domain.BusinessMembership, error) {
	log := slogx.FromContext(ctx).With(
		slog.String("business_id", businessID),
		slog.String("user_id", userID),
	)

	r, err := domain.ParseAssignableRole(role)
	if err != nil {
		return domain.BusinessMembership{}, ErrInvalidRole
	}

	m := domain.BusinessMembership{
		BusinessID: businessID,
		UserID:     userID,
		Role:       r,
		AddedAt:    s.now(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. The business owner holds no membership row.
		business, err := getBusiness(ctx, tx, businessID)
		if err != nil {
			return err
		}
		if business.OwnerID == userID {
			log.Warn("attempted to add business owner as member")
			return ErrIsOwner
		}

		// 2. Only known accounts can be added directly.
		if _, err := getUser(ctx, tx, userID); err != nil {
			return err
		}

		// 3. Insert; the primary key decides races.
		if err := tx.BusinessMembers().AddBusinessMember(ctx, m); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyMember
			}
			log.Error("failed to add business member", slog.Any("error", err))
			return err
		}
		return nil
	})
	if err != nil {
		return domain.BusinessMembership{}, err
	}

	log.Info("business member added", slog.String("role", r.String()))
	return m, nil
}

// RemoveFromBusiness removes userID from the business entirely: the
// business-level row and every cashbook membership in the business's
// cashbooks go in one transaction. Owners of the business or of any of its
// cashbooks are refused.
func (s *MembershipService) RemoveFromBusiness(ctx context.Context, businessID, userID string) error {
	log := slogx.FromContext(ctx).With(
		slog.String("business_id", businessID),
		slog.String("user_id", userID),
	)

	var removedBooks int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Owners stay.
		business, err := getBusiness(ctx, tx, businessID)
		if err != nil {
			return err
		}
		if business.OwnerID == userID {
			log.Warn("attempted to remove business owner")
			return ErrIsOwner
		}

		cashbooks, err := tx.Cashbooks().ListCashbooksByBusiness(ctx, businessID)
		if err != nil {
			log.Error("failed to list cashbooks", slog.Any("error", err))
			return err
		}
		for _, cb := range cashbooks {
			if cb.OwnerID == userID {
				log.Warn("attempted to remove cashbook owner from business",
					slog.String("cashbook_id", cb.ID),
				)
				return ErrIsOwner
			}
		}

		// 2. Both levels together.
		removedRow, err := tx.BusinessMembers().RemoveBusinessMember(ctx, businessID, userID)
		if err != nil {
			log.Error("failed to remove business member", slog.Any("error", err))
			return err
		}
		removedBooks, err = tx.CashbookMembers().RemoveUserFromBusinessCashbooks(ctx, businessID, userID)
		if err != nil {
			log.Error("failed to remove cashbook memberships", slog.Any("error", err))
			return err
		}

		if !removedRow && removedBooks == 0 {
			return ErrNotMember
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("business member removed", slog.Int64("cashbook_memberships", removedBooks))
	return nil
}

// addToCashbook is the shared insert used by direct adds and invite
// acceptance. It runs on whatever store view it is given.
func addToCashbook(ctx context.Context, st store.Store, cashbookID, userID string, now time.Time) (domain.CashbookMembership, error) {
	log := slogx.FromContext(ctx).With(
		slog.String("cashbook_id", cashbookID),
		slog.String("user_id", userID),
	)

	// 1. Owners never get a membership row.
	cb, err := getCashbook(ctx, st, cashbookID)
	if err != nil {
		return domain.CashbookMembership{}, err
	}
	if cb.OwnerID == userID {
		log.Warn("attempted to add cashbook owner as member")
		return domain.CashbookMembership{}, ErrIsOwner
	}
	if cb.BusinessID != "" {
		business, err := getBusiness(ctx, st, cb.BusinessID)
		if err != nil {
			return domain.CashbookMembership{}, err
		}
		if business.OwnerID == userID {
			log.Warn("attempted to add business owner as cashbook member")
			return domain.CashbookMembership{}, ErrIsOwner
		}
	}

	// 2. The user must exist.
	if _, err := getUser(ctx, st, userID); err != nil {
		return domain.CashbookMembership{}, err
	}

	// 3. Insert; the primary key decides races.
	m := domain.CashbookMembership{CashbookID: cashbookID, UserID: userID, AddedAt: now}
	if err := st.CashbookMembers().AddCashbookMember(ctx, m); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.CashbookMembership{}, ErrAlreadyMember
		}
		log.Error("failed to add cashbook member", slog.Any("error", err))
		return domain.CashbookMembership{}, err
	}

	return m, nil
}

func getBusiness(ctx context.Context, st store.Store, id string) (domain.Business, error) {
	b, err := st.Businesses().GetBusinessByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Business{}, ErrBusinessNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch business", slog.String("business_id", id), slog.Any("error", err))
		return domain.Business{}, err
	}
	return b, nil
}

func getCashbook(ctx context.Context, st store.Store, id string) (domain.Cashbook, error) {
	cb, err := st.Cashbooks().GetCashbookByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Cashbook{}, ErrCashbookNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch cashbook", slog.String("cashbook_id", id), slog.Any("error", err))
		return domain.Cashbook{}, err
	}
	return cb, nil
}

func getUser(ctx context.Context, st store.Store, id string) (domain.User, error) {
	u, err := st.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch user", slog.String("user_id", id), slog.Any("error", err))
		return domain.User{}, err
	}
	return u, nil
}
