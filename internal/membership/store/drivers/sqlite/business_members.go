package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
)

type businessMembersRepo struct {
	db dbtx
}

func (r *businessMembersRepo) AddBusinessMember(ctx context.Context, m domain.BusinessMembership) error {
	const q = `INSERT INTO business_members (business_id, user_id, role, added_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, m.BusinessID, m.UserID, string(m.Role), toMillis(m.AddedAt))
	return mapConstraint(err)
}

func (r *businessMembersRepo) PromoteToPartner(ctx context.Context, businessID, userID string, at time.Time) error {
	const q = `
INSERT INTO business_members (business_id, user_id, role, added_at)
VALUES (?, ?, 'partner', ?)
ON CONFLICT (business_id, user_id) DO UPDATE SET role = 'partner'`
	_, err := r.db.ExecContext(ctx, q, businessID, userID, toMillis(at))
	return err
}

func (r *businessMembersRepo) GetBusinessMember(ctx context.Context, businessID, userID string) (domain.BusinessMembership, error) {
	const q = `
SELECT business_id, user_id, role, added_at
FROM business_members
WHERE business_id = ? AND user_id = ?`
	m, err := scanBusinessMember(r.db.QueryRowContext(ctx, q, businessID, userID))
	if err != nil {
		return domain.BusinessMembership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *businessMembersRepo) ListBusinessMembers(ctx context.Context, businessID string) ([]domain.BusinessMembership, error) {
	const q = `
SELECT business_id, user_id, role, added_at
FROM business_members
WHERE business_id = ?
ORDER BY added_at, user_id`
	rows, err := r.db.QueryContext(ctx, q, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BusinessMembership
	for rows.Next() {
		m, err := scanBusinessMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *businessMembersRepo) RemoveBusinessMember(ctx context.Context, businessID, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM business_members WHERE business_id = ? AND user_id = ?`, businessID, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanBusinessMember(s rowScanner) (domain.BusinessMembership, error) {
	var (
		m       domain.BusinessMembership
		role    string
		addedAt int64
	)
	if err := s.Scan(&m.BusinessID, &m.UserID, &role, &addedAt); err != nil {
		return domain.BusinessMembership{}, err
	}
	m.Role = domain.Role(role)
	m.AddedAt = fromMillis(addedAt)
	return m, nil
}
