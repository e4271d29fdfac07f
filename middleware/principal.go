package middleware

import (
	"net/http"

	"github.com/wxtools/wxdb/userctx"
)

// PrincipalHeader carries the caller identity resolved by the deploying
// environment (reverse proxy, service mesh, or the ingest clients
// themselves).
const PrincipalHeader = "X-Wxdb-User"

// Principal resolves the acting principal from the request and stores
// it in the request context for downstream handlers and repositories.
func Principal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := r.Header.Get(PrincipalHeader)
		if principal == "" {
			// Fall back to basic auth username if the caller used it
			if user, _, ok := r.BasicAuth(); ok {
				principal = user
			}
		}

		if principal != "" {
			r = r.WithContext(userctx.SetPrincipal(r.Context(), principal))
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePrincipal rejects requests that carry no resolvable identity.
// Mutations that feed the audit trail must know who is acting.
func RequirePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userctx.GetPrincipal(r.Context()) == "" {
			http.Error(w, "missing "+PrincipalHeader+" header", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
