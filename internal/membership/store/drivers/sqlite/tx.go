package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/cashbook/internal/membership/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open

// Ping is a no-op; the transaction already holds a live connection.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                     { return &usersRepo{db: t.tx} }
func (t *txStore) Businesses() store.Businesses           { return &businessesRepo{db: t.tx} }
func (t *txStore) Cashbooks() store.Cashbooks             { return &cashbooksRepo{db: t.tx} }
func (t *txStore) CashbookMembers() store.CashbookMembers { return &cashbookMembersRepo{db: t.tx} }
func (t *txStore) BusinessMembers() store.BusinessMembers { return &businessMembersRepo{db: t.tx} }
func (t *txStore) Invites() store.Invites                 { return &invitesRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
