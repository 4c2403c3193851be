package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
	"github.com/aussiebroadwan/cashbook/internal/membership/store"
	"github.com/aussiebroadwan/cashbook/pkg/jwtx"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

// UserService mirrors accounts from verified access tokens. The auth service
// owns identity; this copy exists so rosters can show names and contacts.
type UserService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// SyncFromClaims upserts the token subject's profile. It writes only when a
// field changed.
func (s *UserService) SyncFromClaims(ctx context.Context, claims jwtx.Claims) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if claims.Subject == "" {
		return domain.User{}, ErrInvalidRequest
	}

	profile := claims.Profile()
	want := domain.User{
		ID:          claims.Subject,
		Email:       strings.ToLower(strings.TrimSpace(profile.Email)),
		DisplayName: strings.TrimSpace(profile.PreferredName),
	}
	if want.DisplayName == "" {
		want.DisplayName = strings.TrimSpace(profile.Name)
	}
	if p, ok := normalizePhone(strings.TrimSpace(profile.PhoneNumber)); ok {
		want.Phone = p
	}

	// 1. Skip the write when nothing changed.
	existing, err := s.Store.Users().GetUserByID(ctx, want.ID)
	switch {
	case err == nil:
		if existing.Email == want.Email && existing.Phone == want.Phone && existing.DisplayName == want.DisplayName {
			return existing, nil
		}
		want.CreatedAt = existing.CreatedAt
	case errors.Is(err, store.ErrNotFound):
	default:
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. Upsert.
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}
	if want.CreatedAt.IsZero() {
		want.CreatedAt = now
	}
	want.UpdatedAt = now

	if err := s.Store.Users().UpsertUser(ctx, want); err != nil {
		log.Error("failed to upsert user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Debug("user synced from token", slog.String("user_id", want.ID))
	return want, nil
}

// GetUser returns a mirrored user.
func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	return getUser(ctx, s.Store, userID)
}
