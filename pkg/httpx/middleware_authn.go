package httpx

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/cashbook/pkg/jwtx"
	"github.com/aussiebroadwan/cashbook/pkg/slogx"
)

// AuthnMiddleware verifies the bearer access token issued by the auth service
// and injects its claims into the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", slog.Any("error", err))
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = ContextWithClaims(ctx, claims)
			ctx = slogx.WithContext(ctx, log.With(slog.String("user_id", claims.Subject)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
		Error:            "invalid_token",
		ErrorDescription: desc,
	})
}
