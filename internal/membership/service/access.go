package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
	"github.com/aussiebroadwan/cashbook/internal/membership/store"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

// AccessService decides what a caller may do in a business from the caller's
// derived role.
type AccessService struct {
	Store store.Store
}

// RoleOf returns userID's role in the business, or ErrForbidden when the user
// is not on its roster.
func (s *AccessService) RoleOf(ctx context.Context, businessID, userID string) (domain.Role, error) {
	snap, err := loadBusiness(ctx, s.Store, businessID)
	if err != nil {
		return "", err
	}

	role, ok := snap.role(userID)
	if !ok {
		slogx.FromContext(ctx).Warn("caller not on business roster",
			slog.String("business_id", businessID),
			slog.String("user_id", userID),
		)
		return "", ErrForbidden
	}
	return role, nil
}

// RequireMember allows anyone on the roster.
func (s *AccessService) RequireMember(ctx context.Context, businessID, userID string) error {
	_, err := s.RoleOf(ctx, businessID, userID)
	return err
}

// RequireManager allows the Owner and Partners.
func (s *AccessService) RequireManager(ctx context.Context, businessID, userID string) error {
	role, err := s.RoleOf(ctx, businessID, userID)
	if err != nil {
		return err
	}
	if role != domain.RoleOwner && role != domain.RolePartner {
		slogx.FromContext(ctx).Warn("caller lacks manager role",
			slog.String("business_id", businessID),
			slog.String("user_id", userID),
			slog.String("role", role.String()),
		)
		return ErrForbidden
	}
	return nil
}

// RequireOwner allows only the business owner.
func (s *AccessService) RequireOwner(ctx context.Context, businessID, userID string) error {
	role, err := s.RoleOf(ctx, businessID, userID)
	if err != nil {
		return err
	}
	if role != domain.RoleOwner {
		slogx.FromContext(ctx).Warn("caller is not the business owner",
			slog.String("business_id", businessID),
			slog.String("user_id", userID),
			slog.String("role", role.String()),
		)
		return ErrForbidden
	}
	return nil
}
