package middleware

import (
	"net/http"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/auth"
)

// RequireSessionMiddleware gates mutating routes behind a verified admin
// session cookie. Any failure is fail-closed: no cookie, bad signature, and
// expired token all produce the same 401.
func RequireSessionMiddleware(sessions *auth.CookieManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			session := sessions.RequireSession(w, r)
			if session == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
