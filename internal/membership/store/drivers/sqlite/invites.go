package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
	"github.com/aussiebroadwan/cashbook/internal/membership/store"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, business_id, email, phone, role, cashbook_id, status, token_hash,
    sealed_token, invited_by, created_at, expires_at, accepted_at, accepted_by, updated_at`

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	const q = `
INSERT INTO invites (id, business_id, email, phone, role, cashbook_id, status, token_hash,
    sealed_token, invited_by, created_at, expires_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		inv.ID,
		inv.BusinessID,
		mapStringNull(inv.Email),
		mapStringNull(inv.Phone),
		string(inv.Role),
		mapStringNull(inv.CashbookID),
		string(inv.Status),
		inv.TokenHash,
		inv.SealedToken,
		inv.InvitedBy,
		toMillis(inv.CreatedAt),
		toMillis(inv.ExpiresAt),
		toMillis(inv.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	inv, err := scanInvite(r.db.QueryRowContext(ctx, `SELECT `+inviteColumns+` FROM invites WHERE id = ?`, id))
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	inv, err := scanInvite(r.db.QueryRowContext(ctx, `SELECT `+inviteColumns+` FROM invites WHERE token_hash = ?`, hash))
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) ListInvites(ctx context.Context, f store.InviteFilter) ([]domain.Invite, error) {
	q := `SELECT ` + inviteColumns + ` FROM invites WHERE business_id = ?`
	args := []any{f.BusinessID}
	if f.Status != "" {
		q += ` AND status = ?`
		args = append(args, string(f.Status))
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitesRepo) TransitionInvite(ctx context.Context, id string, from, to domain.InviteStatus, at time.Time) (bool, error) {
	const q = `UPDATE invites SET status = ?, updated_at = ? WHERE id = ? AND status = ?`
	return affectedOne(r.db.ExecContext(ctx, q, string(to), toMillis(at), id, string(from)))
}

func (r *invitesRepo) AcceptInvite(ctx context.Context, id, userID string, at time.Time) (bool, error) {
	const q = `
UPDATE invites
SET status = 'accepted', accepted_at = ?, accepted_by = ?, updated_at = ?
WHERE id = ? AND status = 'pending'`
	ms := toMillis(at)
	return affectedOne(r.db.ExecContext(ctx, q, ms, userID, ms, id))
}

func affectedOne(res sql.Result, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func scanInvite(s rowScanner) (domain.Invite, error) {
	var (
		inv                                  domain.Invite
		email, phone, cashbookID, acceptedBy sql.NullString
		role, status                         string
		createdAt, expiresAt, updatedAt      int64
		acceptedAt                           sql.NullInt64
	)
	err := s.Scan(
		&inv.ID,
		&inv.BusinessID,
		&email,
		&phone,
		&role,
		&cashbookID,
		&status,
		&inv.TokenHash,
		&inv.SealedToken,
		&inv.InvitedBy,
		&createdAt,
		&expiresAt,
		&acceptedAt,
		&acceptedBy,
		&updatedAt,
	)
	if err != nil {
		return domain.Invite{}, err
	}

	inv.Email = mapNullString(email)
	inv.Phone = mapNullString(phone)
	inv.Role = domain.Role(role)
	inv.CashbookID = mapNullString(cashbookID)
	inv.Status = domain.InviteStatus(status)
	inv.CreatedAt = fromMillis(createdAt)
	inv.ExpiresAt = fromMillis(expiresAt)
	inv.AcceptedAt = mapNullMillisPtr(acceptedAt)
	inv.AcceptedBy = mapNullString(acceptedBy)
	inv.UpdatedAt = fromMillis(updatedAt)
	return inv, nil
}
