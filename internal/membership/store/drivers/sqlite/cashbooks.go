package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
)

type cashbooksRepo struct {
	db dbtx
}

const cashbookColumns = `id, name, owner_id, business_id, created_at`

func (r *cashbooksRepo) CreateCashbook(ctx context.Context, c domain.Cashbook) error {
	const q = `INSERT INTO cashbooks (id, name, owner_id, business_id, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Name, c.OwnerID, mapStringNull(c.BusinessID), toMillis(c.CreatedAt))
	return mapConstraint(err)
}

func (r *cashbooksRepo) GetCashbookByID(ctx context.Context, id string) (domain.Cashbook, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+cashbookColumns+` FROM cashbooks WHERE id = ?`, id)
	c, err := scanCashbook(row)
	if err != nil {
		return domain.Cashbook{}, mapNotFound(err)
	}
	return c, nil
}

func (r *cashbooksRepo) ListCashbooksByBusiness(ctx context.Context, businessID string) ([]domain.Cashbook, error) {
	const q = `SELECT ` + cashbookColumns + ` FROM cashbooks WHERE business_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Cashbook
	for rows.Next() {
		c, err := scanCashbook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCashbook(s rowScanner) (domain.Cashbook, error) {
	var (
		c          domain.Cashbook
		businessID sql.NullString
		createdAt  int64
	)
	if err := s.Scan(&c.ID, &c.Name, &c.OwnerID, &businessID, &createdAt); err != nil {
		return domain.Cashbook{}, err
	}
	c.BusinessID = mapNullString(businessID)
	c.CreatedAt = fromMillis(createdAt)
	return c, nil
}
