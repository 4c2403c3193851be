package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
	"github.com/aussiebroadwan/cashbook/internal/membership/notify"
	"github.com/aussiebroadwan/cashbook/internal/membership/store"
	"github.com/aussiebroadwan/cashbook/pkg/cryptox"
	"github.com/aussiebroadwan/cashbook/pkg/idx"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

// DefaultInviteTTL is how long an invite stays acceptable.
const DefaultInviteTTL = 7 * 24 * time.Hour

// InviteTokenPurpose binds sealed invite tokens to this use.
const InviteTokenPurpose = "cashbook-invite-token"

type InviteService struct {
	Store    store.Store
	Sealer   *cryptox.Sealer
	Notifier notify.Notifier

	// ConsoleBaseURL is where invitation links point, e.g. https://console.example.com.
	ConsoleBaseURL string

	// TTL defaults to DefaultInviteTTL.
	TTL time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

type CreateInviteParams struct {
	BusinessID string
	Email      string
	Phone      string
	Role       string
	CashbookID string
	InvitedBy  string
}

// InviteResult is returned by create and resend. Token and Link are the only
// place the raw token ever leaves the service.
type InviteResult struct {
	Invite    domain.Invite
	Token     string
	Link      string
	Delivered bool

	// ExistingUserID is set when the target already has an account.
	ExistingUserID string
}

// AcceptResult describes what an accepted invite materialized into.
type AcceptResult struct {
	Invite domain.Invite

	// Exactly one of these is set.
	CashbookMembership *domain.CashbookMembership
	BusinessMembership *domain.BusinessMembership
}

// InvitePreview is what the invitation landing page shows before accepting.
type InvitePreview struct {
	Invite       domain.Invite
	BusinessName string
	CashbookName string
}

func (s *InviteService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *InviteService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultInviteTTL
}

// CreateInvite records a pending invite and dispatches it. Delivery happens
// after commit; a failed delivery leaves the invite pending with
// Delivered=false so it can be resent.
func (s *InviteService) CreateInvite(ctx context.Context, p CreateInviteParams) (InviteResult, error) {
	log := slogx.FromContext(ctx).With(slog.String("business_id", p.BusinessID))

	// 1. Validate the target and role.
	email, phone, err := normalizeTarget(p.Email, p.Phone)
	if err != nil {
		log.Warn("invite rejected: bad target")
		return InviteResult{}, err
	}

	role, err := domain.ParseAssignableRole(p.Role)
	if err != nil {
		log.Warn("invite rejected: bad role", slog.String("role", p.Role))
		return InviteResult{}, ErrInvalidRole
	}

	// 2. The business must exist; Staff invites need one of its cashbooks.
	business, err := getBusiness(ctx, s.Store, p.BusinessID)
	if err != nil {
		return InviteResult{}, err
	}

	cashbookID := ""
	if role == domain.RoleStaff {
		if p.CashbookID == "" {
			return InviteResult{}, ErrCashbookRequired
		}
		cb, err := s.Store.Cashbooks().GetCashbookByID(ctx, p.CashbookID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to fetch cashbook", slog.Any("error", err))
			return InviteResult{}, err
		}
		if err != nil || !cb.InBusiness(business.ID) {
			log.Warn("invite rejected: cashbook not in business", slog.String("cashbook_id", p.CashbookID))
			return InviteResult{}, ErrCashbookRequired
		}
		cashbookID = cb.ID
	}

	// 3. Generate the token. Only its fingerprint and a sealed copy are kept.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return InviteResult{}, err
	}

	now := s.now()
	inv := domain.Invite{
		ID:         idx.NewAt(now).String(),
		BusinessID: business.ID,
		Email:      email,
		Phone:      phone,
		Role:       role,
		CashbookID: cashbookID,
		Status:     domain.InviteStatusPending,
		TokenHash:  cryptox.FingerprintToken(token),
		InvitedBy:  p.InvitedBy,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl()),
		UpdatedAt:  now,
	}

	inv.SealedToken, err = s.Sealer.Seal([]byte(token), []byte(inv.ID))
	if err != nil {
		log.Error("failed to seal invite token", slog.Any("error", err))
		return InviteResult{}, err
	}

	// 4. Store.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invites().CreateInvite(ctx, inv); err != nil {
			log.Error("failed to create invite",
				slog.String("invite_id", inv.ID),
				slog.Any("error", err),
			)
			return err
		}
		return nil
	})
	if err != nil {
		return InviteResult{}, err
	}

	log.Info("invite created",
		slog.String("invite_id", inv.ID),
		slog.String("role", role.String()),
		slog.String("channel", string(inv.Channel())),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	res := InviteResult{
		Invite:         inv,
		Token:          token,
		Link:           s.link(token, inv),
		ExistingUserID: s.existingUserID(ctx, inv),
	}

	// 5. Deliver outside the transaction.
	if err := s.dispatch(ctx, business, inv, res.Link); err != nil {
		log.Warn("invite delivery failed",
			slog.String("invite_id", inv.ID),
			slog.Any("error", err),
		)
		return res, nil
	}
	res.Delivered = true

	return res, nil
}

// ResendInvite re-delivers the original link. Token and expiry are unchanged.
func (s *InviteService) ResendInvite(ctx context.Context, inviteID string) (InviteResult, error) {
	log := slogx.FromContext(ctx).With(slog.String("invite_id", inviteID))

	// 1. Load and check state.
	inv, err := s.getInvite(ctx, inviteID)
	if err != nil {
		return InviteResult{}, err
	}
	if inv.Status != domain.InviteStatusPending {
		log.Warn("resend rejected: invite not pending", slog.String("status", string(inv.Status)))
		return InviteResult{}, ErrNotPending
	}

	now := s.now()
	if inv.ExpiredAt(now) {
		s.recordExpiry(ctx, inv, now)
		return InviteResult{}, ErrExpired
	}

	// 2. Recover the original token.
	raw, err := s.Sealer.Open(inv.SealedToken, []byte(inv.ID))
	if err != nil {
		log.Error("failed to open sealed invite token", slog.Any("error", err))
		return InviteResult{}, err
	}
	token := string(raw)

	business, err := getBusiness(ctx, s.Store, inv.BusinessID)
	if err != nil {
		return InviteResult{}, err
	}

	// 3. Deliver.
	link := s.link(token, inv)
	if err := s.dispatch(ctx, business, inv, link); err != nil {
		log.Warn("invite resend failed", slog.Any("error", err))
		return InviteResult{}, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	log.Info("invite resent")
	return InviteResult{Invite: inv, Token: token, Link: link, Delivered: true}, nil
}

// RevokeInvite moves a pending invite to revoked. The record is kept and the
// token never resolves again.
func (s *InviteService) RevokeInvite(ctx context.Context, inviteID string) (domain.Invite, error) {
	log := slogx.FromContext(ctx).With(slog.String("invite_id", inviteID))

	inv, err := s.getInvite(ctx, inviteID)
	if err != nil {
		return domain.Invite{}, err
	}

	now := s.now()
	if inv.Status == domain.InviteStatusPending && inv.ExpiredAt(now) {
		s.recordExpiry(ctx, inv, now)
		return domain.Invite{}, ErrNotPending
	}

	ok, err := s.Store.Invites().TransitionInvite(ctx, inv.ID, domain.InviteStatusPending, domain.InviteStatusRevoked, now)
	if err != nil {
		log.Error("failed to revoke invite", slog.Any("error", err))
		return domain.Invite{}, err
	}
	if !ok {
		log.Warn("revoke rejected: invite not pending")
		return domain.Invite{}, ErrNotPending
	}

	inv.Status = domain.InviteStatusRevoked
	inv.UpdatedAt = now

	log.Info("invite revoked")
	return inv, nil
}

// AcceptInvite resolves a token for userID. The status change and the
// membership it grants commit together or not at all.
func (s *InviteService) AcceptInvite(ctx context.Context, token, userID string) (AcceptResult, error) {
	log := slogx.FromContext(ctx).With(slog.String("user_id", userID))

	// 1. Reject garbage before touching the store.
	if !cryptox.WellFormedToken(token, cryptox.TokenSize256) {
		log.Warn("accept rejected: malformed token")
		return AcceptResult{}, ErrInvalidToken
	}
	if userID == "" {
		return AcceptResult{}, ErrUserNotFound
	}

	now := s.now()
	var (
		res     AcceptResult
		expired bool
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Look up by fingerprint.
		inv, err := tx.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("accept rejected: unknown token")
				return ErrInvalidToken
			}
			log.Error("failed to fetch invite", slog.Any("error", err))
			return err
		}
		log = log.With(slog.String("invite_id", inv.ID))

		// 3. Terminal states never move again.
		switch inv.Status {
		case domain.InviteStatusExpired:
			return ErrExpired
		case domain.InviteStatusAccepted, domain.InviteStatusRevoked:
			log.Warn("accept rejected: already resolved", slog.String("status", string(inv.Status)))
			return ErrAlreadyResolved
		}

		// 4. Lazy expiry. The transition is committed even though the
		// accept fails.
		if inv.ExpiredAt(now) {
			if _, err := tx.Invites().TransitionInvite(ctx, inv.ID, domain.InviteStatusPending, domain.InviteStatusExpired, now); err != nil {
				log.Error("failed to record invite expiry", slog.Any("error", err))
				return err
			}
			expired = true
			return nil
		}

		// 5. Compare-and-set pending -> accepted.
		ok, err := tx.Invites().AcceptInvite(ctx, inv.ID, userID, now)
		if err != nil {
			log.Error("failed to accept invite", slog.Any("error", err))
			return err
		}
		if !ok {
			log.Warn("accept lost race")
			return ErrAlreadyResolved
		}

		inv.Status = domain.InviteStatusAccepted
		inv.AcceptedAt = &now
		inv.AcceptedBy = userID
		inv.UpdatedAt = now
		res.Invite = inv

		// 6. Materialize in the same transaction.
		return s.materialize(ctx, tx, inv, userID, now, &res)
	})
	if err != nil {
		return AcceptResult{}, err
	}
	if expired {
		log.Info("invite expired on accept")
		return AcceptResult{}, ErrExpired
	}

	log.Info("invite accepted", slog.String("role", res.Invite.Role.String()))
	return res, nil
}

func (s *InviteService) materialize(ctx context.Context, tx store.Tx, inv domain.Invite, userID string, now time.Time, res *AcceptResult) error {
	log := slogx.FromContext(ctx).With(slog.String("invite_id", inv.ID), slog.String("user_id", userID))

	switch inv.Role {
	case domain.RoleStaff:
		m, err := addToCashbook(ctx, tx, inv.CashbookID, userID, now)
		switch {
		case errors.Is(err, ErrAlreadyMember):
			// Target state already holds.
			log.Debug("invitee already a cashbook member", slog.String("cashbook_id", inv.CashbookID))
			m = domain.CashbookMembership{CashbookID: inv.CashbookID, UserID: userID}
		case err != nil:
			return err
		}
		res.CashbookMembership = &m
		return nil

	case domain.RolePartner:
		business, err := getBusiness(ctx, tx, inv.BusinessID)
		if err != nil {
			return err
		}
		if business.OwnerID == userID {
			log.Warn("business owner attempted to accept partner invite")
			return ErrIsOwner
		}
		if _, err := getUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := tx.BusinessMembers().PromoteToPartner(ctx, inv.BusinessID, userID, now); err != nil {
			log.Error("failed to record partner", slog.Any("error", err))
			return err
		}
		m, err := tx.BusinessMembers().GetBusinessMember(ctx, inv.BusinessID, userID)
		if err != nil {
			log.Error("failed to read back partner", slog.Any("error", err))
			return err
		}
		res.BusinessMembership = &m
		return nil

	default:
		log.Error("invite has unassignable role", slog.String("role", inv.Role.String()))
		return ErrInvalidRole
	}
}

// GetInviteByToken previews an invite for the landing page. Expiry is
// reported but not recorded.
func (s *InviteService) GetInviteByToken(ctx context.Context, token string) (InvitePreview, error) {
	if !cryptox.WellFormedToken(token, cryptox.TokenSize256) {
		return InvitePreview{}, ErrInvalidToken
	}

	inv, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return InvitePreview{}, ErrInvalidToken
		}
		slogx.FromContext(ctx).Error("failed to fetch invite", slog.Any("error", err))
		return InvitePreview{}, err
	}
	inv.Status = inv.EffectiveStatus(s.now())

	business, err := getBusiness(ctx, s.Store, inv.BusinessID)
	if err != nil {
		return InvitePreview{}, err
	}

	preview := InvitePreview{Invite: inv, BusinessName: business.Name}
	if inv.CashbookID != "" {
		if cb, err := getCashbook(ctx, s.Store, inv.CashbookID); err == nil {
			preview.CashbookName = cb.Name
		}
	}
	return preview, nil
}

// ListInvites returns the business's invites, newest first, with their
// effective status. An empty status matches everything.
func (s *InviteService) ListInvites(ctx context.Context, businessID, status string) ([]domain.Invite, error) {
	want := domain.InviteStatus(strings.ToLower(strings.TrimSpace(status)))
	if want != "" && !want.Valid() {
		return nil, ErrInvalidRequest
	}

	if _, err := getBusiness(ctx, s.Store, businessID); err != nil {
		return nil, err
	}

	all, err := s.Store.Invites().ListInvites(ctx, store.InviteFilter{BusinessID: businessID})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list invites", slog.Any("error", err))
		return nil, err
	}

	now := s.now()
	out := make([]domain.Invite, 0, len(all))
	for _, inv := range all {
		inv.Status = inv.EffectiveStatus(now)
		if want == "" || inv.Status == want {
			out = append(out, inv)
		}
	}
	return out, nil
}

// GetInvite returns an invite by id with its effective status.
func (s *InviteService) GetInvite(ctx context.Context, inviteID string) (domain.Invite, error) {
	inv, err := s.getInvite(ctx, inviteID)
	if err != nil {
		return domain.Invite{}, err
	}
	inv.Status = inv.EffectiveStatus(s.now())
	return inv, nil
}

func (s *InviteService) getInvite(ctx context.Context, id string) (domain.Invite, error) {
	inv, err := s.Store.Invites().GetInviteByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch invite", slog.String("invite_id", id), slog.Any("error", err))
		return domain.Invite{}, err
	}
	return inv, nil
}

// recordExpiry moves a pending invite to expired. Failure is logged only;
// the caller reports expiry either way.
func (s *InviteService) recordExpiry(ctx context.Context, inv domain.Invite, now time.Time) {
	log := slogx.FromContext(ctx).With(slog.String("invite_id", inv.ID))
	if _, err := s.Store.Invites().TransitionInvite(ctx, inv.ID, domain.InviteStatusPending, domain.InviteStatusExpired, now); err != nil {
		log.Error("failed to record invite expiry", slog.Any("error", err))
		return
	}
	log.Info("invite expired")
}

func (s *InviteService) existingUserID(ctx context.Context, inv domain.Invite) string {
	var (
		u   domain.User
		err error
	)
	if inv.Email != "" {
		u, err = s.Store.Users().FindUserByEmail(ctx, inv.Email)
	} else {
		u, err = s.Store.Users().FindUserByPhone(ctx, inv.Phone)
	}
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Warn("failed to look up invite target", slog.Any("error", err))
		}
		return ""
	}
	return u.ID
}

func (s *InviteService) dispatch(ctx context.Context, business domain.Business, inv domain.Invite, link string) error {
	if s.Notifier == nil {
		return notify.ErrNoChannel
	}

	inviter := ""
	if u, err := s.Store.Users().GetUserByID(ctx, inv.InvitedBy); err == nil {
		inviter = u.Label()
	}

	return s.Notifier.NotifyInvite(ctx, notify.Invitation{
		Channel:      inv.Channel(),
		To:           inv.Target(),
		BusinessName: business.Name,
		InviterName:  inviter,
		Role:         inv.Role,
		Link:         link,
		ExpiresAt:    inv.ExpiresAt,
	})
}

// link renders {base}/invitation?token=..&businessId=..&role=..[&cashbookId=..].
func (s *InviteService) link(token string, inv domain.Invite) string {
	q := url.Values{}
	q.Set("token", token)
	q.Set("businessId", inv.BusinessID)
	q.Set("role", inv.Role.String())
	if inv.CashbookID != "" {
		q.Set("cashbookId", inv.CashbookID)
	}
	return strings.TrimRight(s.ConsoleBaseURL, "/") + "/invitation?" + q.Encode()
}
