package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/cashbook/internal/membership/service"
	"github.com/aussiebroadwan/cashbook/pkg/cashbooksdk"
	"github.com/aussiebroadwan/cashbook/pkg/httpx"
	"github.com/aussiebroadwan/cashbook/pkg/idx"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

// SyncUserMiddleware mirrors the caller's profile from the verified token
// before the handler runs, so rosters and invite matching see current
// names and contacts. Must run after httpx.AuthnMiddleware.
func SyncUserMiddleware(users *service.UserService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims, ok := httpx.ClaimsFromContext(ctx)
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, cashbooksdk.ErrorCodeUnauthorized, "Authentication required.")
				return
			}

			if _, err := users.SyncFromClaims(ctx, claims); err != nil {
				slogx.FromContext(ctx).Error("failed to sync user from token", slog.Any("error", err))
				httpx.WriteError(w, http.StatusInternalServerError, cashbooksdk.ErrorCodeServerError, "Internal server error.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// idPathValues are the route parameters that carry generated ids. User ids
// come from the token subject and are not checked.
var idPathValues = []string{"businessID", "cashbookID", "inviteID"}

// ValidPathIDsMiddleware rejects requests whose id path parameters are not
// well-formed ids. Must wrap a handler registered on the mux.
func ValidPathIDsMiddleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, name := range idPathValues {
				if v := r.PathValue(name); v != "" && !idx.Valid(v) {
					httpx.WriteError(w, http.StatusBadRequest, cashbooksdk.ErrorCodeInvalidRequest,
						"Malformed "+name+".")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
