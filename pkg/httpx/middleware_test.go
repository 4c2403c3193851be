package httpx_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/cashbook/pkg/httpx"
	"github.com/aussiebroadwan/cashbook/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims jwtx.Claims
	err    error
}

func (s stubVerifier) Verify(string) (jwtx.Claims, error) { return s.claims, s.err }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(httpx.UserIDFromContext(r.Context())))
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler(), mark("a"), mark("b"), mark("c"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	claims := jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Scopes:           []string{httpx.ScopeCashbookRead},
	}

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.AuthnMiddleware(stubVerifier{claims: claims})(okHandler()).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("verification failure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		httpx.AuthnMiddleware(stubVerifier{err: errors.New("bad")})(okHandler()).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token injects subject", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		httpx.AuthnMiddleware(stubVerifier{claims: claims})(okHandler()).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", rec.Body.String())
	})
}

func TestRequireScopes(t *testing.T) {
	withScopes := func(scopes ...string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}, Scopes: scopes}
		return req.WithContext(httpx.ContextWithClaims(req.Context(), c))
	}

	tests := []struct {
		name   string
		mw     httpx.Middleware
		scopes []string
		want   int
	}{
		{"any: has one", httpx.RequireAnyScope(httpx.ScopeCashbookRead, httpx.ScopeCashbookWrite), []string{httpx.ScopeCashbookWrite}, http.StatusOK},
		{"any: has none", httpx.RequireAnyScope(httpx.ScopeCashbookWrite), []string{httpx.ScopeCashbookRead}, http.StatusForbidden},
		{"all: has all", httpx.RequireAllScopes(httpx.ScopeCashbookRead, httpx.ScopeCashbookWrite), []string{httpx.ScopeCashbookRead, httpx.ScopeCashbookWrite}, http.StatusOK},
		{"all: missing one", httpx.RequireAllScopes(httpx.ScopeCashbookRead, httpx.ScopeCashbookWrite), []string{httpx.ScopeCashbookRead}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.mw(okHandler()).ServeHTTP(rec, withScopes(tt.scopes...))
			require.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	mw := httpx.CORS(httpx.DefaultCORSConfig([]string{"https://console.example.com"}))
	h := mw(okHandler())

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/invites/accept", nil)
		req.Header.Set("Origin", "https://console.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "https://console.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("disallowed origin gets no headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://anything.example.com")
		rec := httptest.NewRecorder()
		httpx.CORS(httpx.DefaultCORSConfig([]string{"*"}))(okHandler()).ServeHTTP(rec, req)

		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Email string `json:"email"`
	}

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid", `{"email":"a@b.co"}`, false},
		{"unknown field", `{"email":"a@b.co","extra":1}`, true},
		{"trailing data", `{"email":"a@b.co"}{}`, true},
		{"not json", `email=a@b.co`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.in))
			var b body
			err := httpx.DecodeJSON(req, &b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "a@b.co", b.Email)
		})
	}
}
