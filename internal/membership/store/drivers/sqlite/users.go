package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, phone, display_name, created_at, updated_at`

func (r *usersRepo) UpsertUser(ctx context.Context, u domain.User) error {
	const q = `
INSERT INTO users (id, email, phone, display_name, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    email        = excluded.email,
    phone        = excluded.phone,
    display_name = excluded.display_name,
    updated_at   = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, q,
		u.ID,
		mapStringNull(strings.ToLower(u.Email)),
		mapStringNull(u.Phone),
		u.DisplayName,
		toMillis(u.CreatedAt),
		toMillis(u.UpdatedAt),
	)
	return err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) ListUsersByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := `SELECT ` + userColumns + ` FROM users WHERE id IN (` + placeholders(len(ids)) + `) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, stringArgs(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = ? ORDER BY created_at LIMIT 1`
	u, err := scanUser(r.db.QueryRowContext(ctx, q, strings.ToLower(email)))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) FindUserByPhone(ctx context.Context, phone string) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE phone = ? ORDER BY created_at LIMIT 1`
	u, err := scanUser(r.db.QueryRowContext(ctx, q, phone))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func scanUser(s rowScanner) (domain.User, error) {
	var (
		u                    domain.User
		email, phone         sql.NullString
		createdAt, updatedAt int64
	)
	if err := s.Scan(&u.ID, &email, &phone, &u.DisplayName, &createdAt, &updatedAt); err != nil {
		return domain.User{}, err
	}
	u.Email = mapNullString(email)
	u.Phone = mapNullString(phone)
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return u, nil
}
