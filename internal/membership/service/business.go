package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
	"github.com/aussiebroadwan/cashbook/internal/membership/store"
	"github.com/aussiebroadwan/cashbook/pkg/idx"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

// BusinessService seeds the reference data the membership core reads.
type BusinessService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *BusinessService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// CreateBusiness creates a business owned by ownerID.
func (s *BusinessService) CreateBusiness(ctx context.Context, ownerID, name string) (domain.Business, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" || ownerID == "" {
		return domain.Business{}, ErrInvalidRequest
	}

	now := s.now()
	b := domain.Business{
		ID:        idx.NewAt(now).String(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := getUser(ctx, tx, ownerID); err != nil {
			return err
		}
		if err := tx.Businesses().CreateBusiness(ctx, b); err != nil {
			log.Error("failed to create business", slog.Any("error", err))
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Business{}, err
	}

	log.Info("business created", slog.String("business_id", b.ID))
	return b, nil
}

// CreateCashbook creates a cashbook in the business. An owner other than the
// business owner becomes a Partner.
func (s *BusinessService) CreateCashbook(ctx context.Context, businessID, ownerID, name string) (domain.Cashbook, error) {
	log := slogx.FromContext(ctx).With(slog.String("business_id", businessID))

	name = strings.TrimSpace(name)
	if name == "" || ownerID == "" {
		return domain.Cashbook{}, ErrInvalidRequest
	}

	now := s.now()
	cb := domain.Cashbook{
		ID:         idx.NewAt(now).String(),
		Name:       name,
		OwnerID:    ownerID,
		BusinessID: businessID,
		CreatedAt:  now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := getBusiness(ctx, tx, businessID); err != nil {
			return err
		}
		if _, err := getUser(ctx, tx, ownerID); err != nil {
			return err
		}
		if err := tx.Cashbooks().CreateCashbook(ctx, cb); err != nil {
			log.Error("failed to create cashbook", slog.Any("error", err))
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Cashbook{}, err
	}

	log.Info("cashbook created",
		slog.String("cashbook_id", cb.ID),
		slog.String("owner_id", ownerID),
	)
	return cb, nil
}

// GetCashbook returns the cashbook when it belongs to businessID.
func (s *BusinessService) GetCashbook(ctx context.Context, businessID, cashbookID string) (domain.Cashbook, error) {
	cb, err := getCashbook(ctx, s.Store, cashbookID)
	if err != nil {
		return domain.Cashbook{}, err
	}
	if !cb.InBusiness(businessID) {
		return domain.Cashbook{}, ErrCashbookNotFound
	}
	return cb, nil
}
