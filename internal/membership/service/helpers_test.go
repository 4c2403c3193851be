package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/cashbook/internal/membership/domain"
	"github.com/aussiebroadwan/cashbook/internal/membership/notify"
	"github.com/aussiebroadwan/cashbook/internal/membership/store/drivers/sqlite"
	"github.com/aussiebroadwan/cashbook/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type outbox struct {
	mu   sync.Mutex
	sent []notify.Invitation
	err  error
}

func (o *outbox) NotifyInvite(_ context.Context, inv notify.Invitation) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.sent = append(o.sent, inv)
	return nil
}

func (o *outbox) Sent() []notify.Invitation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]notify.Invitation(nil), o.sent...)
}

func (o *outbox) Fail(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.err = err
}

type testEnv struct {
	store  *sqlite.Store
	clock  *testClock
	outbox *outbox

	invites    *InviteService
	members    *MembershipService
	rosters    *RosterService
	access     *AccessService
	users      *UserService
	businesses *BusinessService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	sealer, err := cryptox.NewEphemeralSealer(InviteTokenPurpose)
	require.NoError(t, err)

	clock := &testClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	box := &outbox{}

	return &testEnv{
		store:  st,
		clock:  clock,
		outbox: box,
		invites: &InviteService{
			Store:          st,
			Sealer:         sealer,
			Notifier:       box,
			ConsoleBaseURL: "https://console.example.com/",
			Now:            clock.Now,
		},
		members:    &MembershipService{Store: st, Now: clock.Now},
		rosters:    &RosterService{Store: st},
		access:     &AccessService{Store: st},
		users:      &UserService{Store: st, Now: clock.Now},
		businesses: &BusinessService{Store: st, Now: clock.Now},
	}
}

// seedScenario builds:
//
//	B  owned by U1: C1 (owner U1, member U2), C2 (owner U3, member U4)
//	B2 owned by U1: C3 (owner U1, member U5)
//
// U6 and U7 exist with no relation to either business.
func (e *testEnv) seedScenario(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	now := e.clock.Now()

	for _, id := range []string{"U1", "U2", "U3", "U4", "U5", "U6", "U7"} {
		require.NoError(t, e.store.Users().UpsertUser(ctx, domain.User{
			ID:          id,
			Email:       strings.ToLower(id) + "@example.com",
			DisplayName: "User " + id,
			CreatedAt:   now,
			UpdatedAt:   now,
		}))
	}

	businesses := []domain.Business{
		{ID: "B", Name: "Corner Café", OwnerID: "U1", CreatedAt: now},
		{ID: "B2", Name: "Harbour Kiosk", OwnerID: "U1", CreatedAt: now},
	}
	for _, b := range businesses {
		require.NoError(t, e.store.Businesses().CreateBusiness(ctx, b))
	}

	cashbooks := []domain.Cashbook{
		{ID: "C1", Name: "Till", OwnerID: "U1", BusinessID: "B", CreatedAt: now},
		{ID: "C2", Name: "Catering", OwnerID: "U3", BusinessID: "B", CreatedAt: now},
		{ID: "C3", Name: "Kiosk", OwnerID: "U1", BusinessID: "B2", CreatedAt: now},
	}
	for _, cb := range cashbooks {
		require.NoError(t, e.store.Cashbooks().CreateCashbook(ctx, cb))
	}

	for _, m := range []domain.CashbookMembership{
		{CashbookID: "C1", UserID: "U2", AddedAt: now},
		{CashbookID: "C2", UserID: "U4", AddedAt: now},
		{CashbookID: "C3", UserID: "U5", AddedAt: now},
	} {
		require.NoError(t, e.store.CashbookMembers().AddCashbookMember(ctx, m))
	}
}

func (e *testEnv) cashbookMembers(t *testing.T, cashbookID string) []string {
	t.Helper()
	rows, err := e.store.CashbookMembers().ListCashbookMembers(context.Background(), cashbookID)
	require.NoError(t, err)

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	return ids
}

func rolesByUser(entries []domain.RosterEntry) map[string]domain.Role {
	out := make(map[string]domain.Role, len(entries))
	for _, e := range entries {
		out[e.User.ID] = e.Role
	}
	return out
}
