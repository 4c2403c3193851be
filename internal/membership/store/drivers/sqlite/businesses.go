package sqlite

import (
	"context"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
)

type businessesRepo struct {
	db dbtx
}

func (r *businessesRepo) CreateBusiness(ctx context.Context, b domain.Business) error {
	const q = `INSERT INTO businesses (id, name, owner_id, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, b.ID, b.Name, b.OwnerID, toMillis(b.CreatedAt))
	return mapConstraint(err)
}

func (r *businessesRepo) GetBusinessByID(ctx context.Context, id string) (domain.Business, error) {
	const q = `SELECT id, name, owner_id, created_at FROM businesses WHERE id = ?`

	var (
		b         domain.Business
		createdAt int64
	)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Name, &b.OwnerID, &createdAt); err != nil {
		return domain.Business{}, mapNotFound(err)
	}
	b.CreatedAt = fromMillis(createdAt)
	return b, nil
}

func (r *businessesRepo) ListBusinessIDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM businesses WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
