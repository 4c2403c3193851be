package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	membershiphttp "github.com/aussiebroadwan/cashbook/internal/membership/http"
	"github.com/aussiebroadwan/cashbook/internal/membership/notify"
	"github.com/aussiebroadwan/cashbook/internal/membership/service"
	"github.com/aussiebroadwan/cashbook/internal/membership/store/drivers/sqlite"
	"github.com/aussiebroadwan/cashbook/pkg/cashbooksdk"
	"github.com/aussiebroadwan/cashbook/pkg/cryptox"
	"github.com/aussiebroadwan/cashbook/pkg/httpx"
	"github.com/aussiebroadwan/cashbook/pkg/idx"
	"github.com/aussiebroadwan/cashbook/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://auth.example.com"
	testAudience = "cashbook"
)

type testServer struct {
	URL    string
	signer jwtx.Signer
	client *cashbooksdk.SDKClient

	mu   sync.Mutex
	sent []notify.Invitation
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pemKey, _, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test-kid", pemKey)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	sealer, err := cryptox.NewEphemeralSealer(service.InviteTokenPurpose)
	require.NoError(t, err)

	ts := &testServer{signer: signer}
	notifier := notify.NotifierFunc(func(_ context.Context, inv notify.Invitation) error {
		ts.mu.Lock()
		defer ts.mu.Unlock()
		ts.sent = append(ts.sent, inv)
		return nil
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := membershiphttp.NewRouter(
		keys,
		jwtx.NewCommonEdDSA(keys, testIssuer, []string{testAudience}),
		"test",
		st,
		logger,
		httpx.DefaultCORSConfig([]string{"https://console.example.com"}),
	)
	r.RosterService = &service.RosterService{Store: st}
	r.MembershipService = &service.MembershipService{Store: st}
	r.InviteService = &service.InviteService{
		Store:          st,
		Sealer:         sealer,
		Notifier:       notifier,
		ConsoleBaseURL: "https://console.example.com",
	}
	r.UserService = &service.UserService{Store: st}
	r.BusinessService = &service.BusinessService{Store: st}
	r.AccessService = &service.AccessService{Store: st}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	ts.URL = srv.URL
	ts.client = cashbooksdk.NewSDKClient(srv.URL)
	ts.client.CheckScopes = false
	return ts
}

// token mints an access token for userID. The email is derived from the id.
func (ts *testServer) token(t *testing.T, userID string, scopes ...string) string {
	t.Helper()

	claims := jwtx.NewAccessClaims(userID, scopes, jwtx.Profile{
		Email: strings.ToLower(userID) + "@example.com",
		Name:  "User " + userID,
	}, time.Hour, testIssuer, []string{testAudience}, time.Now())

	tok, err := ts.signer.Sign(claims)
	require.NoError(t, err)
	return tok
}

func (ts *testServer) session(t *testing.T, userID string, scopes ...string) *cashbooksdk.Session {
	t.Helper()
	return ts.client.NewSession(ts.token(t, userID, scopes...), scopes)
}

func (ts *testServer) manager(t *testing.T, userID string) *cashbooksdk.Session {
	return ts.session(t, userID, cashbooksdk.ScopeRead, cashbooksdk.ScopeWrite)
}

func (ts *testServer) lastInvitation(t *testing.T) notify.Invitation {
	t.Helper()
	ts.mu.Lock()
	defer ts.mu.Unlock()
	require.NotEmpty(t, ts.sent)
	return ts.sent[len(ts.sent)-1]
}

func tokenFromLink(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("token")
}

func (ts *testServer) do(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) cashbooksdk.ErrorResponse {
	t.Helper()
	var out cashbooksdk.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	live, err := ts.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := ts.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Keys)
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/v1/businesses/B1/roster", "", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, cashbooksdk.ErrorCodeUnauthorized, decodeError(t, resp).Error)

	resp = ts.do(t, http.MethodGet, "/v1/businesses/B1/roster", "not-a-jwt", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ts.do(t, http.MethodPost, "/v1/businesses", ts.token(t, "U1", cashbooksdk.ScopeRead), `{"name":"X"}`)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, cashbooksdk.ErrorCodeInsufficientScope, decodeError(t, resp).Error)
}

func TestInviteRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	owner := ts.manager(t, "U1")

	b, err := owner.CreateBusiness(ctx, "Corner Café")
	require.NoError(t, err)
	cb, err := owner.CreateCashbook(ctx, b.ID, cashbooksdk.CreateCashbookRequest{Name: "Till"})
	require.NoError(t, err)

	res, err := owner.CreateInvite(ctx, b.ID, cashbooksdk.CreateInviteRequest{
		Email:      "U2@example.com",
		Role:       "staff",
		CashbookID: cb.ID,
	})
	require.NoError(t, err)
	require.True(t, res.Delivered)
	require.Equal(t, "pending", res.Invite.Status)
	require.Equal(t, "u2@example.com", res.Invite.Email)
	require.Equal(t, res.Link, ts.lastInvitation(t).Link)

	token := tokenFromLink(t, res.Link)

	// The invitee holds no cashbook scopes yet.
	invitee := ts.session(t, "U2")

	preview, err := invitee.LookupInvite(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "Corner Café", preview.BusinessName)
	require.Equal(t, "Till", preview.CashbookName)
	require.Equal(t, "staff", preview.Role)

	accepted, err := invitee.AcceptInvite(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "accepted", accepted.Invite.Status)
	require.Equal(t, cb.ID, accepted.Membership.CashbookID)
	require.Equal(t, "U2", accepted.Membership.UserID)

	_, err = invitee.AcceptInvite(ctx, token)
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeAlreadyResolved))

	roster, err := owner.GetRoster(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, roster.Members, 2)
	require.Equal(t, "U1", roster.Members[0].User.ID)
	require.Equal(t, "owner", roster.Members[0].Role)
	require.Equal(t, "U2", roster.Members[1].User.ID)
	require.Equal(t, "staff", roster.Members[1].Role)
	require.Equal(t, "User U2", roster.Members[1].User.DisplayName)

	invites, err := owner.ListInvites(ctx, b.ID, "accepted")
	require.NoError(t, err)
	require.Len(t, invites, 1)

	_, err = owner.ResendInvite(ctx, res.Invite.ID)
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeNotPending))
}

func TestInviteErrors(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	owner := ts.manager(t, "U1")

	b, err := owner.CreateBusiness(ctx, "Corner Café")
	require.NoError(t, err)

	_, err = owner.CreateInvite(ctx, b.ID, cashbooksdk.CreateInviteRequest{
		Email: "a@example.com", Phone: "+61400123456", Role: "partner",
	})
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeInvalidTarget))

	_, err = owner.CreateInvite(ctx, b.ID, cashbooksdk.CreateInviteRequest{Email: "a@example.com", Role: "owner"})
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeInvalidRole))

	_, err = owner.CreateInvite(ctx, b.ID, cashbooksdk.CreateInviteRequest{Email: "a@example.com", Role: "staff"})
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeCashbookRequired))

	resp := ts.do(t, http.MethodPost, "/v1/businesses/"+b.ID+"/invites", owner.AccessToken(), `{"email":"a@example.com","role":"partner","extra":1}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, cashbooksdk.ErrorCodeInvalidRequest, decodeError(t, resp).Error)

	_, err = ts.session(t, "U2").AcceptInvite(ctx, "bogus")
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeInvalidToken))

	res, err := owner.CreateInvite(ctx, b.ID, cashbooksdk.CreateInviteRequest{Phone: "+61 400 123 456", Role: "partner"})
	require.NoError(t, err)
	require.Equal(t, "+61400123456", res.Invite.Phone)

	require.NoError(t, owner.RevokeInvite(ctx, res.Invite.ID))
	err = owner.RevokeInvite(ctx, res.Invite.ID)
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeNotPending))

	_, err = ts.session(t, "U2").AcceptInvite(ctx, tokenFromLink(t, res.Link))
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeAlreadyResolved))

	err = owner.RevokeInvite(ctx, idx.New().String())
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeNotFound))
}

func TestAccessGuard(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	owner := ts.manager(t, "U1")

	b, err := owner.CreateBusiness(ctx, "Corner Café")
	require.NoError(t, err)

	// A stranger is not on the roster.
	stranger := ts.manager(t, "U9")
	_, err = stranger.GetRoster(ctx, b.ID)
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeForbidden))

	// Staff can read but not manage.
	staff := ts.manager(t, "U2")
	_, err = staff.GetRoster(ctx, b.ID) // syncs U2 into the directory
	require.Error(t, err)
	_, err = owner.AddBusinessMember(ctx, b.ID, "U2", "staff")
	require.NoError(t, err)

	roster, err := staff.GetRoster(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "U2", roster.Members[0].User.ID)

	_, err = staff.CreateInvite(ctx, b.ID, cashbooksdk.CreateInviteRequest{Email: "x@example.com", Role: "partner"})
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeForbidden))

	_, err = owner.GetRoster(ctx, idx.New().String())
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeNotFound))
}

func TestCreateCashbookForAnotherOwner(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	owner := ts.manager(t, "U1")
	partner := ts.manager(t, "U2")
	staff := ts.manager(t, "U3")

	b, err := owner.CreateBusiness(ctx, "Corner Café")
	require.NoError(t, err)

	// First requests register the users.
	_, _ = partner.GetRoster(ctx, b.ID)
	_, _ = staff.GetRoster(ctx, b.ID)

	_, err = owner.AddBusinessMember(ctx, b.ID, "U2", "partner")
	require.NoError(t, err)
	_, err = owner.AddBusinessMember(ctx, b.ID, "U3", "staff")
	require.NoError(t, err)

	// A Partner cannot make someone else a Partner.
	_, err = partner.CreateCashbook(ctx, b.ID, cashbooksdk.CreateCashbookRequest{Name: "Side", OwnerID: "U3"})
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeForbidden))

	roster, err := owner.GetRoster(ctx, b.ID)
	require.NoError(t, err)
	for _, m := range roster.Members {
		if m.User.ID == "U3" {
			require.Equal(t, "staff", m.Role)
		}
	}

	cb, err := partner.CreateCashbook(ctx, b.ID, cashbooksdk.CreateCashbookRequest{Name: "Own"})
	require.NoError(t, err)
	require.Equal(t, "U2", cb.OwnerID)

	cb, err = owner.CreateCashbook(ctx, b.ID, cashbooksdk.CreateCashbookRequest{Name: "Catering", OwnerID: "U3"})
	require.NoError(t, err)
	require.Equal(t, "U3", cb.OwnerID)
}

func TestMalformedPathIDs(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	owner := ts.manager(t, "U1")

	b, err := owner.CreateBusiness(ctx, "Corner Café")
	require.NoError(t, err)

	_, err = owner.GetRoster(ctx, "missing")
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeInvalidRequest))

	_, err = owner.AvailableForCashbook(ctx, b.ID, "not-an-id")
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeInvalidRequest))

	err = owner.RevokeInvite(ctx, "missing")
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeInvalidRequest))

	// User ids are token subjects, not generated ids.
	err = owner.RemoveBusinessMember(ctx, b.ID, "ghost")
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeNotMember))
}

func TestMemberRoutes(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	owner := ts.manager(t, "U1")

	b, err := owner.CreateBusiness(ctx, "Corner Café")
	require.NoError(t, err)
	cb, err := owner.CreateCashbook(ctx, b.ID, cashbooksdk.CreateCashbookRequest{Name: "Till"})
	require.NoError(t, err)

	// U3 signs in once so the directory knows them.
	_, _ = ts.manager(t, "U3").GetRoster(ctx, b.ID)

	m, err := owner.AddCashbookMember(ctx, b.ID, cb.ID, "U3")
	require.NoError(t, err)
	require.Equal(t, "staff", m.Role)

	_, err = owner.AddCashbookMember(ctx, b.ID, cb.ID, "U3")
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeAlreadyMember))

	_, err = owner.AddCashbookMember(ctx, b.ID, cb.ID, "U1")
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeIsOwner))

	_, err = owner.AddCashbookMember(ctx, b.ID, cb.ID, "ghost")
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeNotFound))

	available, err := owner.AvailableForCashbook(ctx, b.ID, cb.ID)
	require.NoError(t, err)
	require.Empty(t, available)

	err = owner.RemoveCashbookMember(ctx, b.ID, cb.ID, "U1")
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeIsOwner))

	require.NoError(t, owner.RemoveCashbookMember(ctx, b.ID, cb.ID, "U3"))
	err = owner.RemoveCashbookMember(ctx, b.ID, cb.ID, "U3")
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeNotMember))

	_, err = owner.AddBusinessMember(ctx, b.ID, "U3", "partner")
	require.NoError(t, err)
	roster, err := owner.GetRoster(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "partner", roster.Members[1].Role)

	require.NoError(t, owner.RemoveBusinessMember(ctx, b.ID, "U3"))
	err = owner.RemoveBusinessMember(ctx, b.ID, "U3")
	require.True(t, cashbooksdk.HasCode(err, cashbooksdk.ErrorCodeNotMember))
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/v1/businesses", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://console.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "https://console.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}
