package sqlite

import (
	"context"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
	"github.com/aussiebroadwan/cashbook/internal/membership/store"
)

type cashbookMembersRepo struct {
	db dbtx
}

func (r *cashbookMembersRepo) AddCashbookMember(ctx context.Context, m domain.CashbookMembership) error {
	const q = `INSERT INTO cashbook_members (cashbook_id, user_id, added_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, m.CashbookID, m.UserID, toMillis(m.AddedAt))
	return mapConstraint(err)
}

func (r *cashbookMembersRepo) RemoveCashbookMember(ctx context.Context, cashbookID, userID string) error {
	const q = `DELETE FROM cashbook_members WHERE cashbook_id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, q, cashbookID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *cashbookMembersRepo) ListCashbookMembers(ctx context.Context, cashbookID string) ([]domain.CashbookMembership, error) {
	const q = `
SELECT cashbook_id, user_id, added_at
FROM cashbook_members
WHERE cashbook_id = ?
ORDER BY added_at, user_id`
	return r.list(ctx, q, cashbookID)
}

func (r *cashbookMembersRepo) ListMembersByBusiness(ctx context.Context, businessID string) ([]domain.CashbookMembership, error) {
	const q = `
SELECT m.cashbook_id, m.user_id, m.added_at
FROM cashbook_members m
JOIN cashbooks c ON c.id = m.cashbook_id
WHERE c.business_id = ?
ORDER BY m.cashbook_id, m.added_at, m.user_id`
	return r.list(ctx, q, businessID)
}

func (r *cashbookMembersRepo) RemoveUserFromBusinessCashbooks(ctx context.Context, businessID, userID string) (int64, error) {
	const q = `
DELETE FROM cashbook_members
WHERE user_id = ?
  AND cashbook_id IN (SELECT id FROM cashbooks WHERE business_id = ?)`
	res, err := r.db.ExecContext(ctx, q, userID, businessID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *cashbookMembersRepo) list(ctx context.Context, q string, args ...any) ([]domain.CashbookMembership, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CashbookMembership
	for rows.Next() {
		var (
			m       domain.CashbookMembership
			addedAt int64
		)
		if err := rows.Scan(&m.CashbookID, &m.UserID, &addedAt); err != nil {
			return nil, err
		}
		m.AddedAt = fromMillis(addedAt)
		out = append(out, m)
	}
	return out, rows.Err()
}
